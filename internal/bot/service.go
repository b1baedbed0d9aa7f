package bot

import (
	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/config"
	"github.com/R0Xofficial/MyCatBot/internal/db"
)

type service struct {
	bot *api.BotAPI
	db  db.Client
	cfg config.Config
}

func NewService(bot *api.BotAPI, db db.Client, cfg config.Config) *service {
	return &service{
		bot: bot,
		db:  db,
		cfg: cfg,
	}
}

func (s *service) GetBot() *api.BotAPI {
	return s.bot
}

func (s *service) GetDB() db.Client {
	return s.db
}

func (s *service) GetConfig() config.Config {
	return s.cfg
}

func (s *service) BotID() int64 {
	return s.bot.Self.ID
}
