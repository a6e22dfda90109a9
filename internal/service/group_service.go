package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/pennywise/internal/access"
	"github.com/mmynk/pennywise/internal/apperr"
	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/splits"
	"github.com/mmynk/pennywise/internal/storage"
	"github.com/mmynk/pennywise/pkg/api"
	"github.com/mmynk/pennywise/pkg/api/apiconnect"
)

const maxNameLength = 100

// GroupService implements the Connect GroupService
type GroupService struct {
	apiconnect.UnimplementedGroupServiceHandler
	store    storage.Store
	resolver *access.Resolver
	splits   *splits.Service
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, resolver *access.Resolver, splitSvc *splits.Service) *GroupService {
	return &GroupService{store: store, resolver: resolver, splits: splitSvc}
}

// grant authenticates the caller and resolves their access to groupID.
func grant(ctx context.Context, resolver *access.Resolver, groupID string) (*access.Grant, string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, "", err
	}
	g, err := resolver.Resolve(ctx, groupID, userID)
	if err != nil {
		return nil, "", toConnectError(ctx, err)
	}
	return g, userID, nil
}

func validName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation(field+" is required", map[string]any{"field": field})
	}
	if len(name) > maxNameLength {
		return "", apperr.Validation(field+" is too long", map[string]any{"field": field, "max": maxNameLength})
	}
	return name, nil
}

// callerRole is the caller's effective role in the group.
func callerRole(g *access.Grant) models.Role {
	if g.IsOwner {
		return models.RoleOwner
	}
	return g.Membership.Role
}

// CreateGroup creates a group owned by the caller, with the caller as its
// owner member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", userID)

	name, err := validName("name", req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to load user", err))
	}
	ownerName := "Owner"
	if user != nil {
		switch {
		case user.DisplayName != "":
			ownerName = user.DisplayName
		case user.Email != "":
			ownerName = user.Email
		}
	}

	group := &models.Group{Name: name, OwnerUserID: userID}
	owner := &models.GroupMember{DisplayName: ownerName}
	if err := s.store.CreateGroup(ctx, group, owner); err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to create group", err))
	}

	slog.Info("Group created", "group_id", group.ID, "owner_member_id", owner.ID)
	return connect.NewResponse(&api.CreateGroupResponse{
		Group: toAPIGroup(group, 1),
		Owner: toAPIMember(owner),
	}), nil
}

// ListGroups lists the groups the caller owns or belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list groups", err))
	}

	groups := make([]*api.Group, len(summaries))
	for i, g := range summaries {
		groups[i] = toAPIGroup(&g.Group, g.MemberCount)
	}
	slog.Debug("ListGroups successful", "user_id", userID, "count", len(groups))
	return connect.NewResponse(&api.ListGroupsResponse{Groups: groups}), nil
}

// GetGroup returns a group with its members.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, g.Group.ID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list members", err))
	}

	return connect.NewResponse(&api.GetGroupResponse{
		Group:   toAPIGroup(g.Group, len(members)),
		Members: toAPIMembers(members),
		Role:    string(callerRole(g)),
	}), nil
}

// UpdateGroup renames a group. Owner or admin only.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireManager(); err != nil {
		return nil, toConnectError(ctx, err)
	}

	name, err := validName("name", req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	if err := s.store.UpdateGroupName(ctx, g.Group.ID, name); err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to update group", err))
	}
	g.Group.Name = name

	members, err := s.store.ListMembers(ctx, g.Group.ID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list members", err))
	}
	slog.Info("Group renamed", "group_id", g.Group.ID)
	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(g.Group, len(members))}), nil
}

// DeleteGroup removes a group and everything in it. Owner only.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	g, userID, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if !g.IsOwner {
		return nil, toConnectError(ctx, apperr.Forbidden("only the group owner can delete the group"))
	}

	if err := s.store.DeleteGroup(ctx, g.Group.ID); err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to delete group", err))
	}
	slog.Info("Group deleted", "group_id", g.Group.ID, "user_id", userID)
	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// ListMembers lists a group's members in the order they joined.
func (s *GroupService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, g.Group.ID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list members", err))
	}
	return connect.NewResponse(&api.ListMembersResponse{Members: toAPIMembers(members)}), nil
}

// assignableRole parses a requested role. The owner role is never
// assignable; it is fixed at group creation.
func assignableRole(s string) (models.Role, error) {
	if s == "" {
		return models.RoleMember, nil
	}
	role, ok := models.ParseRole(s)
	if !ok {
		return "", apperr.Validation("role must be admin or member", map[string]any{"field": "role"})
	}
	if role == models.RoleOwner {
		return "", apperr.Validation("the owner role cannot be assigned", map[string]any{"field": "role"})
	}
	return role, nil
}

// checkLinkedUser verifies that a user to link exists.
func (s *GroupService) checkLinkedUser(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return apperr.Internal("failed to load user", err)
	}
	if user == nil {
		return apperr.NotFound("linked user not found")
	}
	return nil
}

func memberWriteError(err error, member *models.GroupMember) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return apperr.Validation("user is already a member of this group", map[string]any{"linkedUserId": member.LinkedUserID})
	}
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound("member not found")
	}
	return apperr.Internal("failed to save member", err)
}

// AddMember adds a person to a group. Owner or admin only.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireManager(); err != nil {
		return nil, toConnectError(ctx, err)
	}

	name, err := validName("displayName", req.Msg.DisplayName)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	role, err := assignableRole(req.Msg.Role)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	linked := strings.TrimSpace(req.Msg.LinkedUserID)
	if err := s.checkLinkedUser(ctx, linked); err != nil {
		return nil, toConnectError(ctx, err)
	}

	member := &models.GroupMember{
		GroupID:      g.Group.ID,
		DisplayName:  name,
		Phone:        strings.TrimSpace(req.Msg.Phone),
		LinkedUserID: linked,
		Role:         role,
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, toConnectError(ctx, memberWriteError(err, member))
	}

	slog.Info("Member added", "group_id", g.Group.ID, "member_id", member.ID, "role", role)
	return connect.NewResponse(&api.AddMemberResponse{Member: toAPIMember(member)}), nil
}

// loadMember fetches a member of the grant's group by a caller-supplied id.
func (s *GroupService) loadMember(ctx context.Context, g *access.Grant, memberID string) (*models.GroupMember, error) {
	if _, err := uuid.Parse(memberID); err != nil {
		return nil, apperr.Validation("invalid member id", map[string]any{"memberId": memberID})
	}
	member, err := s.store.GetMember(ctx, g.Group.ID, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("member not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load member", err)
	}
	return member, nil
}

// UpdateMember changes a member's name, phone, link or role. Owner or admin
// only; only the owner may edit the owner member, whose role and link are
// fixed.
func (s *GroupService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireManager(); err != nil {
		return nil, toConnectError(ctx, err)
	}

	member, err := s.loadMember(ctx, g, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	if member.IsOwner() && !g.IsOwner {
		return nil, toConnectError(ctx, apperr.Forbidden("only the owner can edit the owner member"))
	}

	if req.Msg.DisplayName != nil {
		name, err := validName("displayName", *req.Msg.DisplayName)
		if err != nil {
			return nil, toConnectError(ctx, err)
		}
		member.DisplayName = name
	}
	if req.Msg.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Msg.Phone)
	}
	if req.Msg.Role != nil && models.Role(*req.Msg.Role) != member.Role {
		if member.IsOwner() {
			return nil, toConnectError(ctx, apperr.Validation("the owner's role cannot change", map[string]any{"field": "role"}))
		}
		role, err := assignableRole(*req.Msg.Role)
		if err != nil {
			return nil, toConnectError(ctx, err)
		}
		member.Role = role
	}
	if req.Msg.LinkedUserID != nil {
		linked := strings.TrimSpace(*req.Msg.LinkedUserID)
		if linked != member.LinkedUserID {
			if member.IsOwner() {
				return nil, toConnectError(ctx, apperr.Validation("the owner's account link cannot change", map[string]any{"field": "linkedUserId"}))
			}
			if err := s.checkLinkedUser(ctx, linked); err != nil {
				return nil, toConnectError(ctx, err)
			}
			member.LinkedUserID = linked
		}
	}

	if err := s.store.UpdateMember(ctx, member); err != nil {
		return nil, toConnectError(ctx, memberWriteError(err, member))
	}

	slog.Info("Member updated", "group_id", g.Group.ID, "member_id", member.ID)
	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(member)}), nil
}

// DeleteMember removes a member without split items. Owner or admin only;
// the owner member cannot be removed.
func (s *GroupService) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := g.RequireManager(); err != nil {
		return nil, toConnectError(ctx, err)
	}

	member, err := s.loadMember(ctx, g, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	if member.IsOwner() {
		return nil, toConnectError(ctx, apperr.Forbidden("the owner member cannot be removed"))
	}

	err = s.store.DeleteMember(ctx, g.Group.ID, member.ID)
	switch {
	case errors.Is(err, storage.ErrMemberReferenced):
		return nil, toConnectError(ctx, apperr.Validation("member has split items and cannot be removed", map[string]any{"memberId": member.ID}))
	case errors.Is(err, storage.ErrNotFound):
		return nil, toConnectError(ctx, apperr.NotFound("member not found"))
	case err != nil:
		return nil, toConnectError(ctx, apperr.Internal("failed to delete member", err))
	}

	slog.Info("Member removed", "group_id", g.Group.ID, "member_id", member.ID)
	return connect.NewResponse(&api.DeleteMemberResponse{}), nil
}

// GetGroupBalances totals each member's split items.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	balances, err := s.splits.Balances(ctx, g.Group)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	members, err := s.store.ListMembers(ctx, g.Group.ID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list members", err))
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.DisplayName
	}

	out := make([]*api.MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = &api.MemberBalance{
			MemberID:    b.MemberID,
			DisplayName: names[b.MemberID],
			OwesMinor:   b.OwesMinor,
			GetsMinor:   b.GetsMinor,
			NetMinor:    b.NetMinor,
			ItemCount:   b.ItemCount,
		}
	}
	return connect.NewResponse(&api.GetGroupBalancesResponse{Balances: out}), nil
}
