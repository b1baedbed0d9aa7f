package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/R0Xofficial/MyCatBot/internal/db"
)

func (c *sqliteClient) AddSudo(ctx context.Context, entry *db.SudoEntry) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry.GrantedAt.IsZero() {
		entry.GrantedAt = time.Now().UTC()
	}
	res, err := c.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO sudoers (user_id, granted_by, granted_at)
		VALUES (?, ?, ?)
	`, entry.UserID, entry.GrantedBy, entry.GrantedAt)
	if err != nil {
		return false, fmt.Errorf("add sudo %d: %w", entry.UserID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add sudo %d: %w", entry.UserID, err)
	}
	return n > 0, nil
}

func (c *sqliteClient) RemoveSudo(ctx context.Context, userID int64) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	res, err := c.db.ExecContext(ctx, `DELETE FROM sudoers WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("remove sudo %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove sudo %d: %w", userID, err)
	}
	return n > 0, nil
}

func (c *sqliteClient) IsSudo(ctx context.Context, userID int64) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var count int
	err := c.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sudoers WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("check sudo %d: %w", userID, err)
	}
	return count > 0, nil
}

func (c *sqliteClient) ListSudo(ctx context.Context) ([]*db.SudoEntry, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var entries []*db.SudoEntry
	err := c.db.SelectContext(ctx, &entries, `
		SELECT user_id, granted_by, granted_at FROM sudoers ORDER BY granted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list sudo: %w", err)
	}
	return entries, nil
}
