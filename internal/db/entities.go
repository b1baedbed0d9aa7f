package db

import (
	"fmt"
	"html"
	"strings"
	"time"
)

type (
	// UserRecord is the directory entry for a user the bot has seen, either
	// as a message sender or as the subject of a reply. The id never
	// changes; every other field reflects the most recent sighting.
	UserRecord struct {
		ID           int64     `db:"id"`
		UserName     string    `db:"username"`
		FirstName    string    `db:"first_name"`
		LastName     string    `db:"last_name"`
		LanguageCode string    `db:"language_code"`
		IsBot        bool      `db:"is_bot"`
		LastSeen     time.Time `db:"last_seen"`
	}

	// BlacklistEntry bans a user. The first ban wins: re-banning with a new
	// reason is a no-op until the entry is removed.
	BlacklistEntry struct {
		UserID    int64     `db:"user_id"`
		Reason    string    `db:"reason"`
		BannedBy  int64     `db:"banned_by"`
		CreatedAt time.Time `db:"created_at"`
	}

	// SudoEntry grants elevated privileges. The owner is never stored here;
	// owner status comes from configuration alone.
	SudoEntry struct {
		UserID    int64     `db:"user_id"`
		GrantedBy int64     `db:"granted_by"`
		GrantedAt time.Time `db:"granted_at"`
	}
)

// DefaultBanReason is recorded when a ban is issued without one.
const DefaultBanReason = "No reason provided"

// DisplayName prefers the real name, falls back to the username, then to the
// bare id.
func (u *UserRecord) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return fmt.Sprintf("%d", u.ID)
}

// MentionHTML renders a clickable HTML mention for the record.
func (u *UserRecord) MentionHTML() string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, html.EscapeString(u.DisplayName()))
}
