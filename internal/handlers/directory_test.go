package handlers

import (
	"context"
	"testing"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/R0Xofficial/MyCatBot/internal/db"
)

type recordingUpserter struct {
	records []*db.UserRecord
	err     error
}

func (r *recordingUpserter) UpsertUser(_ context.Context, user *db.UserRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, user)
	return nil
}

func newTestDirectory(store userUpserter) *Directory {
	return &Directory{store: store, logger: log.WithField("handler", "directory")}
}

func TestDirectoryRecordsSenderAndReplySubject(t *testing.T) {
	t.Parallel()

	store := &recordingUpserter{}
	dir := newTestDirectory(store)

	sender := &api.User{ID: 1, UserName: "sender", LanguageCode: "en"}
	subject := &api.User{ID: 2, UserName: "subject", IsBot: true}
	update := &api.Update{
		Message: &api.Message{
			From:           sender,
			ReplyToMessage: &api.Message{From: subject},
		},
	}

	proceed, err := dir.Handle(context.Background(), update, &api.Chat{}, sender)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !proceed {
		t.Fatal("directory must always proceed")
	}
	if len(store.records) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(store.records))
	}
	if store.records[0].ID != 1 || store.records[0].UserName != "sender" {
		t.Fatalf("sender record wrong: %#v", store.records[0])
	}
	if store.records[1].ID != 2 || !store.records[1].IsBot {
		t.Fatalf("reply subject record wrong: %#v", store.records[1])
	}
	if store.records[0].LastSeen.IsZero() {
		t.Fatal("last seen not set")
	}
}

func TestDirectoryProceedsDespiteStoreError(t *testing.T) {
	t.Parallel()

	dir := newTestDirectory(&recordingUpserter{err: errors.New("db gone")})
	update := &api.Update{Message: &api.Message{From: &api.User{ID: 1}}}

	proceed, err := dir.Handle(context.Background(), update, &api.Chat{}, &api.User{ID: 1})
	if err != nil {
		t.Fatalf("handle must swallow store errors: %v", err)
	}
	if !proceed {
		t.Fatal("failed observation must not veto the update")
	}
}

func TestDirectoryIgnoresUserlessUpdates(t *testing.T) {
	t.Parallel()

	store := &recordingUpserter{}
	dir := newTestDirectory(store)

	proceed, err := dir.Handle(context.Background(), &api.Update{}, nil, nil)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !proceed {
		t.Fatal("directory must always proceed")
	}
	if len(store.records) != 0 {
		t.Fatalf("expected no upserts, got %d", len(store.records))
	}
}
