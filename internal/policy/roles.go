package policy

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Role is a user's privilege tier. Owner comes from configuration and is
// strictly senior to Sudo; the two never overlap.
type Role int

const (
	RoleRegular Role = iota
	RoleSudo
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleSudo:
		return "sudo"
	default:
		return "regular"
	}
}

type sudoChecker interface {
	IsSudo(ctx context.Context, userID int64) (bool, error)
}

type Resolver struct {
	ownerID int64
	store   sudoChecker
}

func NewResolver(ownerID int64, store sudoChecker) *Resolver {
	return &Resolver{ownerID: ownerID, store: store}
}

// Classify resolves a user's role. The owner check is a plain comparison;
// only the sudo check touches the store. A failed store read degrades the
// caller to Regular rather than erroring out.
func (r *Resolver) Classify(ctx context.Context, userID int64) Role {
	if userID == r.ownerID {
		return RoleOwner
	}
	isSudo, err := r.store.IsSudo(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("cant check sudo status")
		return RoleRegular
	}
	if isSudo {
		return RoleSudo
	}
	return RoleRegular
}

func (r *Resolver) IsPrivileged(ctx context.Context, userID int64) bool {
	return r.Classify(ctx, userID) != RoleRegular
}

func (r *Resolver) OwnerID() int64 {
	return r.ownerID
}
