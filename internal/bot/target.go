package bot

import (
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
)

type TargetKind int

const (
	// NoTarget means neither a reply nor an @handle argument was supplied.
	NoTarget TargetKind = iota
	// ResolvedUser comes from a replied-to message; the id is known exactly.
	ResolvedUser
	// UnresolvedMention is a bare @handle argument. The transport does not
	// map arbitrary handles to ids without a network round-trip, so the id
	// stays unknown in this path.
	UnresolvedMention
)

type Target struct {
	Kind TargetKind
	// UserID is set only for ResolvedUser.
	UserID int64
	// Mention is an HTML mention for ResolvedUser, or the raw @handle text
	// for UnresolvedMention.
	Mention string
}

// ResolveTarget determines who a social command acts on: the replied-to
// user if the command was sent as a reply, otherwise an @handle-shaped
// first argument, otherwise nobody.
func ResolveTarget(msg *api.Message) Target {
	if msg == nil {
		return Target{Kind: NoTarget}
	}
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil {
		from := msg.ReplyToMessage.From
		return Target{Kind: ResolvedUser, UserID: from.ID, Mention: MentionHTML(from)}
	}
	args := strings.Fields(msg.CommandArguments())
	if len(args) > 0 && strings.HasPrefix(args[0], "@") && len(args[0]) > 1 {
		return Target{Kind: UnresolvedMention, Mention: args[0]}
	}
	return Target{Kind: NoTarget}
}

type Protection int

const (
	Unprotected Protection = iota
	ProtectedOwner
	ProtectedSelf
)

// CheckProtection classifies a target against the owner and the bot itself.
// Only exact-id targets can be checked; unresolved mentions pass through
// unprotected.
func CheckProtection(t Target, ownerID, botID int64) Protection {
	if t.Kind != ResolvedUser {
		return Unprotected
	}
	switch t.UserID {
	case ownerID:
		return ProtectedOwner
	case botID:
		return ProtectedSelf
	}
	return Unprotected
}
