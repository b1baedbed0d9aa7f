package handlers

import (
	"context"
	"fmt"
	"html"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/adapters/catapi"
	"github.com/R0Xofficial/MyCatBot/internal/bot"
	"github.com/R0Xofficial/MyCatBot/internal/handlers/base"
	"github.com/R0Xofficial/MyCatBot/internal/texts"
)

const helpText = `Meeeow! Here are the commands you can use:

/start - Shows the welcome message.
/help - Shows this help message.
/github - Get the link to my source code!
/owner - Info about my designated human!
/gif - Get a random cat GIF!
/photo - Get a random cat photo!
/meow - Get a random cat sound or phrase.
/nap - What's on a cat's mind during naptime?
/play - Random playful cat actions.
/treat - Demand treats!
/zoomies - Witness sudden bursts of cat energy!
/judge - Get judged by a superior feline.
/attack [reply/@user] - Launch a playful attack! (Sim)
/kill [reply/@user] - Metaphorically eliminate someone! (Sim)
/punch [reply/@user] - Deliver a textual punch! (Sim)
/slap [reply/@user] - Administer a swift slap! (Sim)
/bite [reply/@user] - Take a playful bite! (Sim)
/hug [reply/@user] - Offer a comforting hug! (Sim)

<i>(Note: Owner cannot be targeted by attack/kill/punch/slap/bite/hug)</i>`

const githubLink = "https://github.com/R0Xofficial/MyCatBot"

// socialCommand binds an action table to its refusal sets. Hug carries the
// softer refusals.
type socialCommand struct {
	lines         []string
	ownerRefusals []string
	selfRefusals  []string
	prompt        string
}

var socialCommands = map[string]socialCommand{
	"attack": {texts.Attack, texts.CantTargetOwner, texts.CantTargetSelf, "Who to attack? Reply or use /attack @username."},
	"kill":   {texts.Kill, texts.CantTargetOwner, texts.CantTargetSelf, "Who to 'kill'? Reply or use /kill @username."},
	"punch":  {texts.Punch, texts.CantTargetOwner, texts.CantTargetSelf, "Who to 'punch'? Reply or use /punch @username."},
	"slap":   {texts.Slap, texts.CantTargetOwner, texts.CantTargetSelf, "Who to slap? Reply or use /slap @username."},
	"bite":   {texts.Bite, texts.CantTargetOwner, texts.CantTargetSelf, "Who to bite? Reply or use /bite @username."},
	"hug":    {texts.Hug, texts.CantTargetOwnerHug, texts.CantTargetSelfHug, "Who to hug? Reply or use /hug @username."},
}

var cannedCommands = map[string][]string{
	"meow":    texts.Meow,
	"nap":     texts.Nap,
	"play":    texts.Play,
	"treat":   texts.Treat,
	"zoomies": texts.Zoomies,
	"judge":   texts.Judge,
}

// Cat serves the public command surface: canned-text commands, cat media
// and the six social commands with owner/self protection.
type Cat struct {
	*base.BaseHandler
	catAPI  *catapi.Client
	ownerID int64
}

func NewCat(s bot.Service) *Cat {
	cfg := s.GetConfig()
	return &Cat{
		BaseHandler: base.NewBaseHandler(s, "cat"),
		catAPI:      catapi.New(cfg.CatAPIKey, cfg.RequestTimeout),
		ownerID:     cfg.OwnerID,
	}
}

func (c *Cat) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if u == nil || u.Message == nil || !u.Message.IsCommand() || chat == nil || user == nil {
		return true, nil
	}
	msg := u.Message

	if lines, ok := cannedCommands[msg.Command()]; ok {
		c.ReplyHTML(msg, texts.Pick(lines))
		return false, nil
	}
	if social, ok := socialCommands[msg.Command()]; ok {
		c.handleSocial(msg, social)
		return false, nil
	}

	switch msg.Command() {
	case "start":
		c.ReplyHTML(msg, fmt.Sprintf("Meow %s! I'm the Meow Bot.\nUse /help to see available commands for feline fun!", bot.MentionHTML(user)))
	case "help":
		c.ReplyHTML(msg, helpText)
	case "github":
		c.Reply(msg, "Meeeow! I'm open source! You can find my code here:\n"+githubLink)
	case "owner":
		c.handleOwnerInfo(msg)
	case "gif":
		c.handleGIF(ctx, msg)
	case "photo":
		c.handlePhoto(ctx, msg)
	default:
		return true, nil
	}
	return false, nil
}

func (c *Cat) handleSocial(msg *api.Message, cmd socialCommand) {
	target := bot.ResolveTarget(msg)
	if target.Kind == bot.NoTarget {
		c.Reply(msg, cmd.prompt)
		return
	}
	switch bot.CheckProtection(target, c.ownerID, c.GetService().BotID()) {
	case bot.ProtectedOwner:
		c.ReplyHTML(msg, texts.Pick(cmd.ownerRefusals))
	case bot.ProtectedSelf:
		c.ReplyHTML(msg, texts.Pick(cmd.selfRefusals))
	default:
		mention := target.Mention
		if target.Kind == bot.UnresolvedMention {
			mention = html.EscapeString(mention)
		}
		c.ReplyHTML(msg, texts.WithTarget(texts.Pick(cmd.lines), mention))
	}
}

func (c *Cat) handleOwnerInfo(msg *api.Message) {
	ownerMention := fmt.Sprintf("<code>%d</code>", c.ownerID)
	ownerName := "My Esteemed Human"
	ownerChat, err := c.GetService().GetBot().GetChat(api.ChatInfoConfig{
		ChatConfig: api.ChatConfig{ChatID: c.ownerID},
	})
	if err != nil {
		c.GetLogger().WithError(err).Warn("cant fetch owner info")
	} else {
		name := fmt.Sprintf("%s %s", ownerChat.FirstName, ownerChat.LastName)
		if ownerChat.FirstName == "" {
			name = ownerChat.Title
		}
		if name != "" {
			ownerName = html.EscapeString(name)
		}
		if ownerChat.UserName != "" {
			ownerMention = "@" + ownerChat.UserName
		}
	}
	c.ReplyHTML(msg, fmt.Sprintf(
		"My designated human, the bringer of treats and head scratches, is:\n<b>%s</b> (%s)\nThey hold the secret to the treat jar!",
		ownerName, ownerMention,
	))
}

func (c *Cat) handleGIF(ctx context.Context, msg *api.Message) {
	url, err := c.catAPI.RandomGIF(ctx)
	if err != nil {
		c.GetLogger().WithError(err).Error("cant fetch gif")
		c.Reply(msg, "Hiss! Couldn't reach the GIF source.")
		return
	}
	animation := api.NewAnimation(msg.Chat.ID, api.FileURL(url))
	animation.Caption = "Meow! A random GIF for you!"
	if _, err := c.GetService().GetBot().Send(animation); err != nil {
		c.GetLogger().WithError(err).Error("cant send gif")
	}
}

func (c *Cat) handlePhoto(ctx context.Context, msg *api.Message) {
	url, err := c.catAPI.RandomPhoto(ctx)
	if err != nil {
		c.GetLogger().WithError(err).Error("cant fetch photo")
		c.Reply(msg, "Hiss! Couldn't reach the photo source.")
		return
	}
	photo := api.NewPhoto(msg.Chat.ID, api.FileURL(url))
	photo.Caption = "Purrfect! A random photo for you!"
	if _, err := c.GetService().GetBot().Send(photo); err != nil {
		c.GetLogger().WithError(err).Error("cant send photo")
	}
}
