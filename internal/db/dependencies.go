package db

import "context"

// Client is the persistence boundary for the user directory, the blacklist
// and the sudoers table. The boolean results on the mutating calls report
// whether the call changed anything, so handlers can tell "done" from
// "was already so".
type Client interface {
	Close() error

	UpsertUser(ctx context.Context, user *UserRecord) error
	GetUser(ctx context.Context, id int64) (*UserRecord, error)
	FindUserByUsername(ctx context.Context, username string) (*UserRecord, error)

	AddBlacklist(ctx context.Context, entry *BlacklistEntry) (bool, error)
	RemoveBlacklist(ctx context.Context, userID int64) (bool, error)
	IsBlacklisted(ctx context.Context, userID int64) (bool, error)
	GetBlacklistEntry(ctx context.Context, userID int64) (*BlacklistEntry, error)
	ListBlacklist(ctx context.Context) ([]*BlacklistEntry, error)

	AddSudo(ctx context.Context, entry *SudoEntry) (bool, error)
	RemoveSudo(ctx context.Context, userID int64) (bool, error)
	IsSudo(ctx context.Context, userID int64) (bool, error)
	ListSudo(ctx context.Context) ([]*SudoEntry, error)
}
