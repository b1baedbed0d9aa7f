package handlers

import (
	"context"
	"testing"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/config"
)

// The nil bot API in the fake service makes any reply attempt panic, so a
// passing run proves the handler stayed completely silent.
func TestAdminIgnoresUnauthorizedCallersSilently(t *testing.T) {
	t.Parallel()

	const ownerID = int64(12345)

	for _, tt := range []struct {
		name string
		text string
		sudo bool
	}{
		{"regular user owner-only command", "/addsudo 111", false},
		{"sudo user owner-only command", "/addsudo 111", true},
		{"regular user privileged command", "/blist 111 spam", false},
		{"regular user status", "/status", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore()
			if tt.sudo {
				store.sudoers[54321] = true
			}
			admin := NewAdmin(&fakeService{store: store, cfg: config.Config{OwnerID: ownerID}})

			msg := commandMessage(tt.text)
			msg.From = &api.User{ID: 54321}
			chat := &api.Chat{ID: 1}

			proceed, err := admin.Handle(context.Background(), &api.Update{Message: msg}, chat, msg.From)
			if err != nil {
				t.Fatalf("handle: %v", err)
			}
			if proceed {
				t.Fatal("unauthorized admin command must consume the update")
			}
			if store.addSudoCalls != 0 {
				t.Fatalf("sudo table was touched %d times", store.addSudoCalls)
			}
			if store.addBlacklistCalls != 0 {
				t.Fatalf("blacklist was touched %d times", store.addBlacklistCalls)
			}
		})
	}
}

func TestAdminPassesThroughForeignCommands(t *testing.T) {
	t.Parallel()

	admin := NewAdmin(&fakeService{store: newFakeStore(), cfg: config.Config{OwnerID: 12345}})

	msg := commandMessage("/meow")
	msg.From = &api.User{ID: 54321}

	proceed, err := admin.Handle(context.Background(), &api.Update{Message: msg}, &api.Chat{ID: 1}, msg.From)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !proceed {
		t.Fatal("non-admin command must pass down the chain")
	}
}

func TestParseSayTarget(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		args     string
		wantID   int64
		wantText string
		wantOK   bool
	}{
		{"negative group id", "-100123456 hello there", -100123456, "hello there", true},
		{"long positive id", "123456789 hello", 123456789, "hello", true},
		{"short number is text", "42 is the answer", 0, "42 is the answer", false},
		{"id without text", "-100123456", 0, "-100123456", false},
		{"plain text", "just a message", 0, "just a message", false},
		{"single word", "meow", 0, "meow", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			id, text, ok := parseSayTarget(tt.args)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Fatalf("id = %d, want %d", id, tt.wantID)
			}
			if text != tt.wantText {
				t.Fatalf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestReadableDuration(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{42 * time.Second, "42s"},
		{3*time.Minute + 4*time.Second, "3m, 4s"},
		{2*time.Hour + 4*time.Second, "2h, 0m, 4s"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "1d, 2h, 3m, 4s"},
		{-5 * time.Second, "0s"},
	} {
		if got := readableDuration(tt.d); got != tt.want {
			t.Fatalf("readableDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
