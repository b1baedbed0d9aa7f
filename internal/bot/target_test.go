package bot

import (
	"strings"
	"testing"

	api "github.com/OvyFlash/telegram-bot-api"
)

func commandMessage(text string) *api.Message {
	length := len(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		length = i
	}
	return &api.Message{
		Text: text,
		Entities: []api.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: length},
		},
	}
}

func TestResolveTargetPrefersReply(t *testing.T) {
	t.Parallel()

	msg := commandMessage("/attack @someone")
	msg.ReplyToMessage = &api.Message{
		From: &api.User{ID: 55, FirstName: "Tom"},
	}

	target := ResolveTarget(msg)
	if target.Kind != ResolvedUser {
		t.Fatalf("kind = %v, want ResolvedUser", target.Kind)
	}
	if target.UserID != 55 {
		t.Fatalf("user id = %d, want 55", target.UserID)
	}
	if target.Mention == "" {
		t.Fatal("mention must be set for a resolved user")
	}
}

func TestResolveTargetHandleArgument(t *testing.T) {
	t.Parallel()

	target := ResolveTarget(commandMessage("/slap @someone hard"))
	if target.Kind != UnresolvedMention {
		t.Fatalf("kind = %v, want UnresolvedMention", target.Kind)
	}
	if target.Mention != "@someone" {
		t.Fatalf("mention = %q, want @someone", target.Mention)
	}
	if target.UserID != 0 {
		t.Fatalf("user id = %d, want unset", target.UserID)
	}
}

func TestResolveTargetNoTarget(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"/hug", "/hug   ", "/hug somename", "/hug @"} {
		if target := ResolveTarget(commandMessage(text)); target.Kind != NoTarget {
			t.Fatalf("ResolveTarget(%q).Kind = %v, want NoTarget", text, target.Kind)
		}
	}
	if target := ResolveTarget(nil); target.Kind != NoTarget {
		t.Fatalf("ResolveTarget(nil).Kind = %v, want NoTarget", target.Kind)
	}
}

func TestCheckProtection(t *testing.T) {
	t.Parallel()

	const ownerID, botID = int64(10), int64(20)

	for _, tt := range []struct {
		name   string
		target Target
		want   Protection
	}{
		{"owner", Target{Kind: ResolvedUser, UserID: ownerID}, ProtectedOwner},
		{"bot self", Target{Kind: ResolvedUser, UserID: botID}, ProtectedSelf},
		{"bystander", Target{Kind: ResolvedUser, UserID: 30}, Unprotected},
		{"unresolved mention", Target{Kind: UnresolvedMention, Mention: "@owner"}, Unprotected},
		{"no target", Target{Kind: NoTarget}, Unprotected},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckProtection(tt.target, ownerID, botID); got != tt.want {
				t.Fatalf("CheckProtection = %v, want %v", got, tt.want)
			}
		})
	}
}
