package handlers

import (
	"context"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"github.com/R0Xofficial/MyCatBot/internal/bot"
	"github.com/R0Xofficial/MyCatBot/internal/db"
)

type userUpserter interface {
	UpsertUser(ctx context.Context, user *db.UserRecord) error
}

// Directory records every user the bot observes, as sender or as the
// subject of a reply. The transport's own handle lookup is unreliable, so
// this table doubles as the handle-to-id cache for later resolution.
type Directory struct {
	store  userUpserter
	logger *log.Entry
}

func NewDirectory(s bot.Service) *Directory {
	return &Directory{
		store:  s.GetDB(),
		logger: log.WithField("handler", "directory"),
	}
}

// Handle upserts the sender and, when present, the replied-to user. It
// always proceeds: observation is a side effect, never a veto, and a failed
// write degrades a later lookup at worst.
func (d *Directory) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if u == nil {
		return true, nil
	}
	now := time.Now().UTC()
	d.observe(ctx, user, now)
	if u.Message != nil && u.Message.ReplyToMessage != nil {
		d.observe(ctx, u.Message.ReplyToMessage.From, now)
	}
	return true, nil
}

func (d *Directory) observe(ctx context.Context, user *api.User, seenAt time.Time) {
	if user == nil {
		return
	}
	record := &db.UserRecord{
		ID:           user.ID,
		UserName:     user.UserName,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		LanguageCode: user.LanguageCode,
		IsBot:        user.IsBot,
		LastSeen:     seenAt,
	}
	if err := d.store.UpsertUser(ctx, record); err != nil {
		d.logger.WithError(err).WithField("user_id", user.ID).Warn("cant upsert user")
	}
}
