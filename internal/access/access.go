// Package access decides whether a caller may read or manage a group.
package access

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mmynk/pennywise/internal/apperr"
	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/storage"
)

// Directory is the subset of the group store the resolver reads.
type Directory interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	FindMembership(ctx context.Context, groupID, userID string) (*models.GroupMember, error)
}

// Resolver resolves group existence, membership and role for a caller.
type Resolver struct {
	dir Directory
}

// NewResolver creates a Resolver backed by dir.
func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Grant is the outcome of a successful resolution.
type Grant struct {
	Group *models.Group

	// IsOwner is true when the caller owns the group.
	IsOwner bool

	// Membership is the member linked to the caller, or nil when the caller
	// is the owner without a linked member row.
	Membership *models.GroupMember
}

// CanManage reports whether the caller may change the group and its members.
func (g *Grant) CanManage() bool {
	if g.IsOwner {
		return true
	}
	return g.Membership != nil && g.Membership.Role.CanManage()
}

// RequireManager returns a FORBIDDEN error unless the caller can manage the
// group.
func (g *Grant) RequireManager() error {
	if !g.CanManage() {
		return apperr.Forbidden("only the group owner or an admin can do this")
	}
	return nil
}

// Resolve loads the group and checks that callerID may access it.
func (r *Resolver) Resolve(ctx context.Context, groupID, callerID string) (*Grant, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return nil, apperr.Validation("invalid group id", map[string]any{"groupId": groupID})
	}

	group, err := r.dir.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("group not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load group", err)
	}

	grant := &Grant{Group: group, IsOwner: callerID != "" && group.OwnerUserID == callerID}

	if callerID != "" {
		membership, err := r.dir.FindMembership(ctx, groupID, callerID)
		if err != nil {
			return nil, apperr.Internal("failed to load membership", err)
		}
		grant.Membership = membership
	}

	if !grant.IsOwner && grant.Membership == nil {
		return nil, apperr.Forbidden("you are not a member of this group")
	}
	return grant, nil
}
