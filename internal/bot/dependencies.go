package bot

import (
	"context"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/config"
	"github.com/R0Xofficial/MyCatBot/internal/db"
)

// ServiceBot defines bot-specific operations
type ServiceBot interface {
	GetBot() *api.BotAPI
	BotID() int64
}

// ServiceDB defines database-specific operations
type ServiceDB interface {
	GetDB() db.Client
}

// Service defines the core bot service interface
type Service interface {
	ServiceBot
	ServiceDB
	GetConfig() config.Config
}

// Handler is one link of the update chain. Returning proceed == false stops
// the chain for this update; this is how the blacklist gate silences a
// sender without any visible refusal.
type Handler interface {
	Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (proceed bool, err error)
}
