package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/R0Xofficial/MyCatBot/internal/db"
)

// AddBlacklist inserts a ban entry. An existing entry stays untouched
// (first ban wins); the return value reports whether a row was written.
func (c *sqliteClient) AddBlacklist(ctx context.Context, entry *db.BlacklistEntry) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	res, err := c.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO blacklist (user_id, reason, banned_by, created_at)
		VALUES (?, ?, ?, ?)
	`, entry.UserID, entry.Reason, entry.BannedBy, entry.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("add blacklist %d: %w", entry.UserID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add blacklist %d: %w", entry.UserID, err)
	}
	return n > 0, nil
}

func (c *sqliteClient) RemoveBlacklist(ctx context.Context, userID int64) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	res, err := c.db.ExecContext(ctx, `DELETE FROM blacklist WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("remove blacklist %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove blacklist %d: %w", userID, err)
	}
	return n > 0, nil
}

func (c *sqliteClient) IsBlacklisted(ctx context.Context, userID int64) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var count int
	err := c.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blacklist WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("check blacklist %d: %w", userID, err)
	}
	return count > 0, nil
}

func (c *sqliteClient) GetBlacklistEntry(ctx context.Context, userID int64) (*db.BlacklistEntry, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var entry db.BlacklistEntry
	err := c.db.GetContext(ctx, &entry, `
		SELECT user_id, reason, banned_by, created_at FROM blacklist WHERE user_id = ?
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blacklist %d: %w", userID, err)
	}
	return &entry, nil
}

func (c *sqliteClient) ListBlacklist(ctx context.Context) ([]*db.BlacklistEntry, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var entries []*db.BlacklistEntry
	err := c.db.SelectContext(ctx, &entries, `
		SELECT user_id, reason, banned_by, created_at FROM blacklist ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list blacklist: %w", err)
	}
	return entries, nil
}
