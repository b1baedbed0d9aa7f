package handlers

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/pkg/errors"

	"github.com/R0Xofficial/MyCatBot/internal/adapters/speedtest"
	"github.com/R0Xofficial/MyCatBot/internal/bot"
	"github.com/R0Xofficial/MyCatBot/internal/db"
	"github.com/R0Xofficial/MyCatBot/internal/handlers/base"
	"github.com/R0Xofficial/MyCatBot/internal/infra"
	"github.com/R0Xofficial/MyCatBot/internal/policy"
)

const speedtestTimeout = 5 * time.Minute

// entityKind classifies what a blist/sudo target argument turned out to be.
type entityKind int

const (
	entityUnknown entityKind = iota
	entityUser
	entityGroup
	entityChannel
)

// adminTarget is a resolved /blist or /addsudo argument, plus the leftover
// tokens (the ban reason, when present).
type adminTarget struct {
	id      int64
	kind    entityKind
	isBot   bool
	display string
	rest    []string
}

// Admin serves the privileged surface. Every command here checks the caller's
// role first; a caller below the required tier gets no reply at all.
type Admin struct {
	*base.BaseHandler
	store     db.Client
	roles     *policy.Resolver
	startTime time.Time
}

func NewAdmin(s bot.Service) *Admin {
	return &Admin{
		BaseHandler: base.NewBaseHandler(s, "admin"),
		store:       s.GetDB(),
		roles:       policy.NewResolver(s.GetConfig().OwnerID, s.GetDB()),
		startTime:   time.Now(),
	}
}

func (a *Admin) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if u == nil || u.Message == nil || !u.Message.IsCommand() || chat == nil || user == nil {
		return true, nil
	}
	msg := u.Message
	cmd := msg.Command()

	ownerOnly := map[string]bool{"addsudo": true, "delsudo": true, "listsudo": true}
	privileged := map[string]bool{
		"blist": true, "unblist": true, "status": true,
		"say": true, "leave": true, "speedtest": true,
	}
	if !ownerOnly[cmd] && !privileged[cmd] {
		return true, nil
	}

	role := a.roles.Classify(ctx, user.ID)
	if ownerOnly[cmd] && role != policy.RoleOwner {
		a.GetLogger().WithField("user_id", user.ID).WithField("command", cmd).Trace("dropping owner-only command")
		return false, nil
	}
	if !ownerOnly[cmd] && role == policy.RoleRegular {
		a.GetLogger().WithField("user_id", user.ID).WithField("command", cmd).Trace("dropping privileged command")
		return false, nil
	}

	switch cmd {
	case "blist":
		a.handleBlacklistAdd(ctx, msg, user)
	case "unblist":
		a.handleBlacklistRemove(ctx, msg)
	case "addsudo":
		a.handleSudoAdd(ctx, msg, user)
	case "delsudo":
		a.handleSudoRemove(ctx, msg)
	case "listsudo":
		a.handleSudoList(ctx, msg)
	case "status":
		a.handleStatus(msg)
	case "say":
		a.handleSay(msg)
	case "leave":
		a.handleLeave(msg, user, chat)
	case "speedtest":
		a.handleSpeedtest(msg)
	}
	return false, nil
}

// resolveAdminTarget turns a reply or a first argument (id or @handle) into a
// concrete entity. The directory cache is consulted before the network; a
// network hit on an unseen user is written back into the directory.
func (a *Admin) resolveAdminTarget(ctx context.Context, msg *api.Message) (*adminTarget, error) {
	args := strings.Fields(msg.CommandArguments())

	if reply := msg.ReplyToMessage; reply != nil && reply.From != nil {
		return &adminTarget{
			id:      reply.From.ID,
			kind:    entityUser,
			isBot:   reply.From.IsBot,
			display: bot.MentionHTML(reply.From),
			rest:    args,
		}, nil
	}
	if len(args) == 0 {
		return nil, errors.New("no target")
	}

	token, rest := args[0], args[1:]
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		return a.resolveByID(ctx, id, rest)
	}
	if strings.HasPrefix(token, "@") && len(token) > 1 {
		return a.resolveByUsername(ctx, token, rest)
	}
	return nil, errors.Errorf("unusable target %q", token)
}

func (a *Admin) resolveByID(ctx context.Context, id int64, rest []string) (*adminTarget, error) {
	record, err := a.store.GetUser(ctx, id)
	if err != nil {
		a.GetLogger().WithError(err).Warn("cant read directory")
	}
	if record != nil {
		return &adminTarget{id: id, kind: entityUser, isBot: record.IsBot, display: record.MentionHTML(), rest: rest}, nil
	}
	chatInfo, err := a.GetService().GetBot().GetChat(api.ChatInfoConfig{
		ChatConfig: api.ChatConfig{ChatID: id},
	})
	if err != nil {
		// Unreachable entities still get an id-only target; the caller
		// decides whether a blind id is acceptable.
		return &adminTarget{id: id, kind: entityUnknown, display: fmt.Sprintf("<code>%d</code>", id), rest: rest}, nil
	}
	return a.targetFromChat(&chatInfo, rest), nil
}

func (a *Admin) resolveByUsername(ctx context.Context, handle string, rest []string) (*adminTarget, error) {
	record, err := a.store.FindUserByUsername(ctx, strings.TrimPrefix(handle, "@"))
	if err != nil {
		a.GetLogger().WithError(err).Warn("cant read directory")
	}
	if record != nil {
		return &adminTarget{id: record.ID, kind: entityUser, isBot: record.IsBot, display: record.MentionHTML(), rest: rest}, nil
	}
	chatInfo, err := a.GetService().GetBot().GetChat(api.ChatInfoConfig{
		ChatConfig: api.ChatConfig{SuperGroupUsername: handle},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cant resolve %s", handle)
	}
	target := a.targetFromChat(&chatInfo, rest)
	if target.kind == entityUser {
		writeBack := &db.UserRecord{
			ID:        chatInfo.ID,
			UserName:  chatInfo.UserName,
			FirstName: chatInfo.FirstName,
			LastName:  chatInfo.LastName,
			LastSeen:  time.Now().UTC(),
		}
		if err := a.store.UpsertUser(ctx, writeBack); err != nil {
			a.GetLogger().WithError(err).Warn("cant write back resolved user")
		}
	}
	return target, nil
}

func (a *Admin) targetFromChat(chatInfo *api.ChatFullInfo, rest []string) *adminTarget {
	target := &adminTarget{id: chatInfo.ID, rest: rest}
	switch chatInfo.Type {
	case "private":
		target.kind = entityUser
		name := strings.TrimSpace(chatInfo.FirstName + " " + chatInfo.LastName)
		if name == "" {
			name = chatInfo.UserName
		}
		target.display = fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, chatInfo.ID, html.EscapeString(name))
	case "channel":
		target.kind = entityChannel
		target.display = html.EscapeString(chatInfo.Title)
	default:
		target.kind = entityGroup
		target.display = html.EscapeString(chatInfo.Title)
	}
	return target
}

func (a *Admin) handleBlacklistAdd(ctx context.Context, msg *api.Message, invoker *api.User) {
	if msg.ReplyToMessage == nil && msg.CommandArguments() == "" {
		a.handleBlacklistList(ctx, msg)
		return
	}
	target, err := a.resolveAdminTarget(ctx, msg)
	if err != nil {
		a.Reply(msg, "Hiss! Who should I blacklist? Reply to them or give me an ID/@username.")
		return
	}
	switch {
	case target.id == a.roles.OwnerID():
		a.Reply(msg, "Hiss! I would never blacklist my own human.")
		return
	case target.id == a.GetService().BotID():
		a.Reply(msg, "Meow? I'm not blacklisting myself.")
		return
	case target.kind == entityGroup || target.kind == entityChannel:
		a.ReplyHTML(msg, fmt.Sprintf("Hiss! %s is a chat, not a user. Only users can be blacklisted.", target.display))
		return
	case target.isBot:
		a.Reply(msg, "Meow. Bots can't talk to me anyway, no point blacklisting them.")
		return
	}
	if a.roles.Classify(ctx, target.id) == policy.RoleSudo {
		a.ReplyHTML(msg, fmt.Sprintf("Hiss! %s is a sudo user. Revoke their sudo first.", target.display))
		return
	}

	reason := strings.TrimSpace(strings.Join(target.rest, " "))
	if reason == "" {
		reason = db.DefaultBanReason
	}
	added, err := a.store.AddBlacklist(ctx, &db.BlacklistEntry{
		UserID:   target.id,
		Reason:   reason,
		BannedBy: invoker.ID,
	})
	if err != nil {
		a.GetLogger().WithError(err).Error("cant add blacklist entry")
		a.Reply(msg, "Hiss! Something went wrong with my little black book.")
		return
	}
	if !added {
		existing, err := a.store.GetBlacklistEntry(ctx, target.id)
		if err == nil && existing != nil {
			a.ReplyHTML(msg, fmt.Sprintf("Meow. %s is already blacklisted.\nReason: <i>%s</i>", target.display, html.EscapeString(existing.Reason)))
		} else {
			a.ReplyHTML(msg, fmt.Sprintf("Meow. %s is already blacklisted.", target.display))
		}
		return
	}
	a.ReplyHTML(msg, fmt.Sprintf("Done! %s <code>%d</code> is now blacklisted.\nReason: <i>%s</i>", target.display, target.id, html.EscapeString(reason)))
}

func (a *Admin) handleBlacklistList(ctx context.Context, msg *api.Message) {
	entries, err := a.store.ListBlacklist(ctx)
	if err != nil {
		a.GetLogger().WithError(err).Error("cant list blacklist")
		a.Reply(msg, "Hiss! Couldn't read my little black book.")
		return
	}
	if len(entries) == 0 {
		a.Reply(msg, "Purr. The blacklist is empty. Everyone behaves!")
		return
	}
	var sb strings.Builder
	sb.WriteString("<b>Blacklisted users:</b>\n")
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("• %s — <i>%s</i>\n", a.describeUser(ctx, entry.UserID), html.EscapeString(entry.Reason)))
	}
	a.ReplyHTML(msg, sb.String())
}

func (a *Admin) handleBlacklistRemove(ctx context.Context, msg *api.Message) {
	target, err := a.resolveAdminTarget(ctx, msg)
	if err != nil {
		a.Reply(msg, "Hiss! Who should I forgive? Reply to them or give me an ID/@username.")
		return
	}
	removed, err := a.store.RemoveBlacklist(ctx, target.id)
	if err != nil {
		a.GetLogger().WithError(err).Error("cant remove blacklist entry")
		a.Reply(msg, "Hiss! Something went wrong with my little black book.")
		return
	}
	if !removed {
		a.ReplyHTML(msg, fmt.Sprintf("Meow? %s wasn't blacklisted in the first place.", target.display))
		return
	}
	a.ReplyHTML(msg, fmt.Sprintf("Purr! %s is forgiven and removed from the blacklist.", target.display))
}

func (a *Admin) handleSudoAdd(ctx context.Context, msg *api.Message, invoker *api.User) {
	target, err := a.resolveAdminTarget(ctx, msg)
	if err != nil {
		a.Reply(msg, "Hiss! Who gets sudo? Reply to them or give me an ID/@username.")
		return
	}
	switch {
	case target.id == a.roles.OwnerID():
		a.Reply(msg, "Meow. You already rule over everything, no sudo needed.")
		return
	case target.id == a.GetService().BotID():
		a.Reply(msg, "Meow? I don't need sudo over myself.")
		return
	case target.kind == entityGroup || target.kind == entityChannel:
		a.ReplyHTML(msg, fmt.Sprintf("Hiss! %s is a chat, not a user.", target.display))
		return
	case target.isBot:
		a.Reply(msg, "Hiss! No sudo for bots.")
		return
	}
	added, err := a.store.AddSudo(ctx, &db.SudoEntry{UserID: target.id, GrantedBy: invoker.ID})
	if err != nil {
		a.GetLogger().WithError(err).Error("cant add sudo entry")
		a.Reply(msg, "Hiss! Something went wrong with the sudoers list.")
		return
	}
	if !added {
		a.ReplyHTML(msg, fmt.Sprintf("Meow. %s already has sudo.", target.display))
		return
	}
	a.ReplyHTML(msg, fmt.Sprintf("Purr! %s <code>%d</code> now has sudo powers.", target.display, target.id))
}

func (a *Admin) handleSudoRemove(ctx context.Context, msg *api.Message) {
	target, err := a.resolveAdminTarget(ctx, msg)
	if err != nil {
		a.Reply(msg, "Hiss! Whose sudo goes away? Reply to them or give me an ID/@username.")
		return
	}
	removed, err := a.store.RemoveSudo(ctx, target.id)
	if err != nil {
		a.GetLogger().WithError(err).Error("cant remove sudo entry")
		a.Reply(msg, "Hiss! Something went wrong with the sudoers list.")
		return
	}
	if !removed {
		a.ReplyHTML(msg, fmt.Sprintf("Meow? %s never had sudo.", target.display))
		return
	}
	a.ReplyHTML(msg, fmt.Sprintf("Done. %s lost their sudo powers.", target.display))
}

func (a *Admin) handleSudoList(ctx context.Context, msg *api.Message) {
	entries, err := a.store.ListSudo(ctx)
	if err != nil {
		a.GetLogger().WithError(err).Error("cant list sudoers")
		a.Reply(msg, "Hiss! Couldn't read the sudoers list.")
		return
	}
	if len(entries) == 0 {
		a.Reply(msg, "Meow. No sudo users. You rule alone.")
		return
	}
	var sb strings.Builder
	sb.WriteString("<b>Sudo users:</b>\n")
	for _, entry := range entries {
		sb.WriteString("• " + a.describeUser(ctx, entry.UserID) + "\n")
	}
	a.ReplyHTML(msg, sb.String())
}

// describeUser renders a user as an HTML mention when the directory knows
// them, a bare code-formatted id otherwise.
func (a *Admin) describeUser(ctx context.Context, id int64) string {
	record, err := a.store.GetUser(ctx, id)
	if err != nil || record == nil {
		return fmt.Sprintf("<code>%d</code>", id)
	}
	return fmt.Sprintf("%s (<code>%d</code>)", record.MentionHTML(), id)
}

func (a *Admin) handleStatus(msg *api.Message) {
	ping := time.Since(msg.Time())
	if ping < 0 {
		ping = 0
	}
	a.ReplyHTML(msg, fmt.Sprintf(
		"Purr... All systems operational!\nUptime: <code>%s</code>\nPing: <code>%d ms</code>\nOwner ID: <code>%d</code>",
		readableDuration(time.Since(a.startTime)), ping.Milliseconds(), a.roles.OwnerID(),
	))
}

// parseSayTarget decides whether the first token of /say's arguments names a
// remote chat. A short positive number is treated as message text, not a chat
// id, so "/say 42 is the answer" stays in the current chat.
func parseSayTarget(args string) (chatID int64, text string, ok bool) {
	tokens := strings.Fields(args)
	if len(tokens) < 2 {
		return 0, args, false
	}
	id, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return 0, args, false
	}
	if len(tokens[0]) <= 4 && id >= 0 {
		return 0, args, false
	}
	return id, strings.Join(tokens[1:], " "), true
}

func (a *Admin) handleSay(msg *api.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		a.Reply(msg, "Meow? Say what? Usage: /say [chat_id] <text>")
		return
	}
	chatID, text, remote := parseSayTarget(args)
	if remote {
		// Reachability probe: an id-looking token pointing nowhere is
		// treated as ordinary text.
		if _, err := a.GetService().GetBot().GetChat(api.ChatInfoConfig{
			ChatConfig: api.ChatConfig{ChatID: chatID},
		}); err != nil {
			remote = false
		}
	}
	if !remote {
		if err := a.SendTo(msg.Chat.ID, args); err != nil {
			a.GetLogger().WithError(err).Error("cant say")
		}
		return
	}
	if err := a.SendTo(chatID, text); err != nil {
		a.GetLogger().WithError(err).Error("cant say to remote chat")
		a.ReplyHTML(msg, fmt.Sprintf("Hiss! Couldn't deliver the message to <code>%d</code>.", chatID))
		return
	}
	a.ReplyHTML(msg, fmt.Sprintf("Meow! Message sent to chat <code>%d</code>.", chatID))
}

func (a *Admin) handleLeave(msg *api.Message, invoker *api.User, chat *api.Chat) {
	targetID := chat.ID
	if args := strings.TrimSpace(msg.CommandArguments()); args != "" {
		id, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			a.Reply(msg, "Meow? That doesn't look like a chat ID. Usage: /leave [chat_id]")
			return
		}
		targetID = id
	}
	if targetID == chat.ID && chat.IsPrivate() {
		a.Reply(msg, "Meow? This is a private chat. I can't leave you!")
		return
	}

	// Best effort; a chat that forbids the bot to speak still gets left.
	if err := a.SendTo(targetID, "Meow! My human tells me it's time to go. Goodbye everyone!"); err != nil {
		a.GetLogger().WithError(err).Warn("cant send farewell")
	}
	if _, err := a.GetService().GetBot().Request(api.LeaveChatConfig{
		ChatConfig: api.ChatConfig{ChatID: targetID},
	}); err != nil {
		a.GetLogger().WithError(err).Error("cant leave chat")
		a.ReplyHTML(msg, fmt.Sprintf("Hiss! Couldn't leave chat <code>%d</code>.", targetID))
		return
	}
	confirmation := fmt.Sprintf("Purr. Left chat <code>%d</code>.", targetID)
	if targetID == chat.ID {
		// The origin chat is gone for us now; report to the invoker directly.
		if err := a.SendTo(invoker.ID, confirmation); err != nil {
			a.GetLogger().WithError(err).Warn("cant confirm leave in private")
		}
		return
	}
	a.ReplyHTML(msg, confirmation)
}

func (a *Admin) handleSpeedtest(msg *api.Message) {
	a.Reply(msg, "Meow! Chasing the fastest laser pointer... this takes a minute.")
	chatID := msg.Chat.ID
	replyTo := msg.MessageID
	go infra.GoRecoverable(1, "speedtest", func() {
		ctx, cancel := context.WithTimeout(context.Background(), speedtestTimeout)
		defer cancel()

		result, err := speedtest.Run(ctx)
		report := api.NewMessage(chatID, "")
		report.ReplyParameters.MessageID = replyTo
		report.ReplyParameters.AllowSendingWithoutReply = true
		if err != nil {
			a.GetLogger().WithError(err).Error("speedtest failed")
			report.Text = "Hiss! The speed test tripped over its own paws. Try again later."
		} else {
			report.ParseMode = api.ModeHTML
			report.Text = fmt.Sprintf(
				"Purr! Speed test results:\nServer: <code>%s</code>\nPing: <code>%s</code>\nDownload: <code>%s</code>\nUpload: <code>%s</code>",
				html.EscapeString(result.ServerName), result.Latency, result.Download, result.Upload,
			)
		}
		if _, err := a.GetService().GetBot().Send(report); err != nil {
			a.GetLogger().WithError(err).Error("cant send speedtest report")
		}
	})
}

// readableDuration renders an uptime as "1d, 2h, 3m, 4s", dropping leading
// zero components.
func readableDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, ", ")
}
