package base

import (
	"errors"

	api "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"github.com/R0Xofficial/MyCatBot/internal/bot"
)

// BaseHandler provides common functionality for all update handlers.
type BaseHandler struct {
	service bot.Service
	logger  *log.Entry
}

func NewBaseHandler(service bot.Service, handlerName string) *BaseHandler {
	return &BaseHandler{
		service: service,
		logger:  log.WithField("handler", handlerName),
	}
}

func (h *BaseHandler) GetService() bot.Service {
	return h.service
}

func (h *BaseHandler) GetLogger() *log.Entry {
	return h.logger
}

// Reply sends plain text into the message's chat, quoting the message.
// Send failures are logged, never propagated; a lost reply must not take
// down the update loop.
func (h *BaseHandler) Reply(msg *api.Message, text string) {
	h.send(msg, text, "")
}

// ReplyHTML is Reply with HTML parse mode, for mentions and formatting.
func (h *BaseHandler) ReplyHTML(msg *api.Message, text string) {
	h.send(msg, text, api.ModeHTML)
}

func (h *BaseHandler) send(msg *api.Message, text, parseMode string) {
	if msg == nil || text == "" {
		return
	}
	reply := api.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = parseMode
	reply.ReplyParameters.MessageID = msg.MessageID
	reply.ReplyParameters.AllowSendingWithoutReply = true
	if _, err := h.service.GetBot().Send(reply); err != nil {
		h.logger.WithError(err).WithField("chat_id", msg.Chat.ID).Error("cant send reply")
	}
}

// SendTo delivers plain text to an arbitrary chat.
func (h *BaseHandler) SendTo(chatID int64, text string) error {
	if text == "" {
		return errors.New("empty message")
	}
	_, err := h.service.GetBot().Send(api.NewMessage(chatID, text))
	return err
}
