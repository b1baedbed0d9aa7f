package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamwavecut/tool"

	"github.com/R0Xofficial/MyCatBot/internal/db"
)

func (c *sqliteClient) UpsertUser(ctx context.Context, user *db.UserRecord) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	query := `
		INSERT INTO users (id, username, first_name, last_name, language_code, is_bot, last_seen)
		VALUES (:id, :username, :first_name, :last_name, :language_code, :is_bot, :last_seen)
		ON CONFLICT(id) DO UPDATE SET
		username=excluded.username,
		first_name=excluded.first_name,
		last_name=excluded.last_name,
		language_code=excluded.language_code,
		is_bot=excluded.is_bot,
		last_seen=excluded.last_seen;
	`
	return tool.Err(c.db.NamedExecContext(ctx, query, user))
}

func (c *sqliteClient) GetUser(ctx context.Context, id int64) (*db.UserRecord, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var user db.UserRecord
	err := c.db.GetContext(ctx, &user, `
		SELECT id, username, first_name, last_name, language_code, is_bot, last_seen
		FROM users WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// FindUserByUsername looks a user up by handle, case-insensitively and
// without the leading "@". The directory is a best-effort cache; a miss is
// an ordinary outcome, not an error.
func (c *sqliteClient) FindUserByUsername(ctx context.Context, username string) (*db.UserRecord, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var user db.UserRecord
	err := c.db.GetContext(ctx, &user, `
		SELECT id, username, first_name, last_name, language_code, is_bot, last_seen
		FROM users WHERE username = ? COLLATE NOCASE AND username != ''
	`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}
