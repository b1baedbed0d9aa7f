package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/R0Xofficial/MyCatBot/internal/config"
	"github.com/R0Xofficial/MyCatBot/internal/db"
)

const testBotID = int64(99)

// fakeService satisfies bot.Service for handler tests. A nil botAPI makes
// any send attempt panic, which is how tests prove a handler stayed silent.
type fakeService struct {
	botAPI *api.BotAPI
	store  db.Client
	cfg    config.Config
}

func (s *fakeService) GetBot() *api.BotAPI      { return s.botAPI }
func (s *fakeService) GetDB() db.Client         { return s.store }
func (s *fakeService) GetConfig() config.Config { return s.cfg }

func (s *fakeService) BotID() int64 {
	if s.botAPI != nil {
		return s.botAPI.Self.ID
	}
	return testBotID
}

// fakeStore is an in-memory db.Client that counts mutating calls.
type fakeStore struct {
	sudoers           map[int64]bool
	blacklisted       map[int64]bool
	addSudoCalls      int
	addBlacklistCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sudoers:     make(map[int64]bool),
		blacklisted: make(map[int64]bool),
	}
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) UpsertUser(context.Context, *db.UserRecord) error { return nil }

func (f *fakeStore) GetUser(context.Context, int64) (*db.UserRecord, error) { return nil, nil }

func (f *fakeStore) FindUserByUsername(context.Context, string) (*db.UserRecord, error) {
	return nil, nil
}

func (f *fakeStore) AddBlacklist(_ context.Context, entry *db.BlacklistEntry) (bool, error) {
	f.addBlacklistCalls++
	if f.blacklisted[entry.UserID] {
		return false, nil
	}
	f.blacklisted[entry.UserID] = true
	return true, nil
}

func (f *fakeStore) RemoveBlacklist(_ context.Context, userID int64) (bool, error) {
	present := f.blacklisted[userID]
	delete(f.blacklisted, userID)
	return present, nil
}

func (f *fakeStore) IsBlacklisted(_ context.Context, userID int64) (bool, error) {
	return f.blacklisted[userID], nil
}

func (f *fakeStore) GetBlacklistEntry(context.Context, int64) (*db.BlacklistEntry, error) {
	return nil, nil
}

func (f *fakeStore) ListBlacklist(context.Context) ([]*db.BlacklistEntry, error) {
	return nil, nil
}

func (f *fakeStore) AddSudo(_ context.Context, entry *db.SudoEntry) (bool, error) {
	f.addSudoCalls++
	if f.sudoers[entry.UserID] {
		return false, nil
	}
	f.sudoers[entry.UserID] = true
	return true, nil
}

func (f *fakeStore) RemoveSudo(_ context.Context, userID int64) (bool, error) {
	present := f.sudoers[userID]
	delete(f.sudoers, userID)
	return present, nil
}

func (f *fakeStore) IsSudo(_ context.Context, userID int64) (bool, error) {
	return f.sudoers[userID], nil
}

func (f *fakeStore) ListSudo(context.Context) ([]*db.SudoEntry, error) { return nil, nil }

// sentRequest is one outbound bot API call captured by the fake endpoint.
type sentRequest struct {
	Method string
	Params url.Values
}

type sentLog struct {
	mu       sync.Mutex
	requests []sentRequest
}

func (l *sentLog) add(req sentRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, req)
}

func (l *sentLog) all() []sentRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]sentRequest(nil), l.requests...)
}

// newTestBotAPI spins up a fake bot API endpoint and connects a BotAPI to
// it. Every call except getMe is recorded into the returned log.
func newTestBotAPI(t *testing.T) (*api.BotAPI, *sentLog) {
	t.Helper()

	sent := &sentLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Path[strings.LastIndexByte(r.URL.Path, '/')+1:]
		w.Header().Set("Content-Type", "application/json")
		if method == "getMe" {
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":99,"is_bot":true,"first_name":"cat","username":"test_cat_bot"}}`))
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form for %s: %v", method, err)
		}
		sent.add(sentRequest{Method: method, Params: r.PostForm})
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"}}}`))
	}))
	t.Cleanup(server.Close)

	botAPI, err := api.NewBotAPIWithClient("test-token", server.URL+"/bot%s/%s", server.Client())
	if err != nil {
		t.Fatalf("new bot api: %v", err)
	}
	return botAPI, sent
}

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
