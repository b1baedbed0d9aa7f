package handlers

import (
	"context"
	"strings"
	"testing"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/config"
	"github.com/R0Xofficial/MyCatBot/internal/texts"
)

func newTestCat(t *testing.T, ownerID int64) (*Cat, *sentLog) {
	t.Helper()
	botAPI, sent := newTestBotAPI(t)
	svc := &fakeService{
		botAPI: botAPI,
		store:  newFakeStore(),
		cfg:    config.Config{OwnerID: ownerID},
	}
	return NewCat(svc), sent
}

func lineSet(table []string) map[string]bool {
	set := make(map[string]bool, len(table))
	for _, line := range table {
		set[line] = true
	}
	return set
}

func socialReply(t *testing.T, cat *Cat, sent *sentLog, target *api.User) string {
	t.Helper()

	msg := commandMessage("/attack")
	msg.Chat = api.Chat{ID: 1}
	msg.From = &api.User{ID: 54321, FirstName: "Bystander"}
	msg.ReplyToMessage = &api.Message{From: target}

	proceed, err := cat.Handle(context.Background(), &api.Update{Message: msg}, &msg.Chat, msg.From)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if proceed {
		t.Fatal("social command must consume the update")
	}

	requests := sent.all()
	if len(requests) != 1 || requests[0].Method != "sendMessage" {
		t.Fatalf("expected exactly one sendMessage, got %#v", requests)
	}
	return requests[0].Params.Get("text")
}

func TestSocialCommandRefusesOwnerTarget(t *testing.T) {
	t.Parallel()

	cat, sent := newTestCat(t, 12345)
	text := socialReply(t, cat, sent, &api.User{ID: 12345, FirstName: "Owner"})

	if !lineSet(texts.CantTargetOwner)[text] {
		t.Fatalf("reply %q is not an owner-protection line", text)
	}
}

func TestSocialCommandRefusesSelfTarget(t *testing.T) {
	t.Parallel()

	cat, sent := newTestCat(t, 12345)
	text := socialReply(t, cat, sent, &api.User{ID: testBotID, FirstName: "Cat"})

	if !lineSet(texts.CantTargetSelf)[text] {
		t.Fatalf("reply %q is not a self-protection line", text)
	}
}

func TestSocialCommandActsOnBystander(t *testing.T) {
	t.Parallel()

	cat, sent := newTestCat(t, 12345)
	text := socialReply(t, cat, sent, &api.User{ID: 55, FirstName: "Mouse"})

	if !strings.Contains(text, "tg://user?id=55") {
		t.Fatalf("reply %q does not mention the target", text)
	}
	if lineSet(texts.CantTargetOwner)[text] || lineSet(texts.CantTargetSelf)[text] {
		t.Fatalf("reply %q is a protection line, expected an action line", text)
	}
}

func TestSocialCommandPromptsWithoutTarget(t *testing.T) {
	t.Parallel()

	cat, sent := newTestCat(t, 12345)

	msg := commandMessage("/hug")
	msg.Chat = api.Chat{ID: 1}
	msg.From = &api.User{ID: 54321}

	proceed, err := cat.Handle(context.Background(), &api.Update{Message: msg}, &msg.Chat, msg.From)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if proceed {
		t.Fatal("social command must consume the update")
	}

	requests := sent.all()
	if len(requests) != 1 {
		t.Fatalf("expected one reply, got %d", len(requests))
	}
	if text := requests[0].Params.Get("text"); !strings.Contains(text, "/hug") {
		t.Fatalf("prompt %q does not explain usage", text)
	}
}
