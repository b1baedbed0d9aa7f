package handlers

import (
	"context"

	api "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"github.com/R0Xofficial/MyCatBot/internal/bot"
)

type blacklistChecker interface {
	IsBlacklisted(ctx context.Context, userID int64) (bool, error)
}

// Gate drops every update from a blacklisted sender before any command
// handler sees it. Dropping is silent on purpose: a visible refusal would
// let a banned user probe for the bot, while silence makes it appear
// unresponsive to them alone.
type Gate struct {
	ownerID int64
	store   blacklistChecker
	logger  *log.Entry
}

func NewGate(s bot.Service) *Gate {
	return &Gate{
		ownerID: s.GetConfig().OwnerID,
		store:   s.GetDB(),
		logger:  log.WithField("handler", "gate"),
	}
}

func (g *Gate) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if user == nil {
		return true, nil
	}
	// The owner is admitted unconditionally, even with a stray blacklist row.
	if user.ID == g.ownerID {
		return true, nil
	}
	banned, err := g.store.IsBlacklisted(ctx, user.ID)
	if err != nil {
		// Fail open: a broken store read must not silence innocent users.
		g.logger.WithError(err).WithField("user_id", user.ID).Warn("cant check blacklist, admitting")
		return true, nil
	}
	if banned {
		g.logger.WithField("user_id", user.ID).Trace("dropping update from blacklisted user")
		return false, nil
	}
	return true, nil
}
