package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/pennywise/pkg/api"
)

func ptr[T any](v T) *T { return &v }

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	resp, err := env.groups.CreateGroup(ctx, as(alice, &api.CreateGroupRequest{Name: "  Road Trip  "}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Road Trip" {
		t.Errorf("name: expected trimmed 'Road Trip', got %q", resp.Msg.Group.Name)
	}
	if resp.Msg.Group.OwnerUserID != alice.ID {
		t.Errorf("owner: expected %s, got %s", alice.ID, resp.Msg.Group.OwnerUserID)
	}
	owner := resp.Msg.Owner
	if owner.Role != "owner" || owner.LinkedUserID != alice.ID || owner.DisplayName != "alice" {
		t.Errorf("owner member: unexpected %+v", owner)
	}

	_, err = env.groups.CreateGroup(ctx, as(alice, &api.CreateGroupRequest{Name: "   "}))
	details := expectError(t, err, connect.CodeInvalidArgument, "VALIDATION_ERROR")
	if details["field"] != "name" {
		t.Errorf("details: expected field name, got %v", details)
	}

	_, err = env.groups.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "Anon"}))
	expectError(t, err, connect.CodeUnauthenticated, "")
}

func TestListAndGetGroups(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	groupID, _ := env.groupWith(t, alice,
		&api.AddMemberRequest{DisplayName: "Bob", LinkedUserID: bob.ID},
		&api.AddMemberRequest{DisplayName: "Carol", Phone: "+91 98765 43210"},
	)
	env.groupWith(t, alice)

	aliceGroups, err := env.groups.ListGroups(ctx, as(alice, &api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(aliceGroups.Msg.Groups) != 2 {
		t.Errorf("alice: expected 2 groups, got %d", len(aliceGroups.Msg.Groups))
	}

	bobGroups, err := env.groups.ListGroups(ctx, as(bob, &api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(bobGroups.Msg.Groups) != 1 || bobGroups.Msg.Groups[0].ID != groupID {
		t.Fatalf("bob: expected only %s, got %+v", groupID, bobGroups.Msg.Groups)
	}
	if bobGroups.Msg.Groups[0].MemberCount != 3 {
		t.Errorf("memberCount: expected 3, got %d", bobGroups.Msg.Groups[0].MemberCount)
	}

	got, err := env.groups.GetGroup(ctx, as(bob, &api.GetGroupRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got.Msg.Role != "member" {
		t.Errorf("role: expected member, got %s", got.Msg.Role)
	}
	if len(got.Msg.Members) != 3 || got.Msg.Members[0].Role != "owner" {
		t.Errorf("members: unexpected %+v", got.Msg.Members)
	}
	if got.Msg.Members[2].Phone != "+91 98765 43210" {
		t.Errorf("phone: expected to round-trip, got %q", got.Msg.Members[2].Phone)
	}

	mallory := env.register(t, "mallory")
	_, err = env.groups.GetGroup(ctx, as(mallory, &api.GetGroupRequest{GroupID: groupID}))
	expectError(t, err, connect.CodePermissionDenied, "FORBIDDEN")
}

func TestUpdateAndDeleteGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	dave := env.register(t, "dave")

	groupID, _ := env.groupWith(t, alice,
		&api.AddMemberRequest{DisplayName: "Bob", LinkedUserID: bob.ID},
		&api.AddMemberRequest{DisplayName: "Dave", LinkedUserID: dave.ID, Role: "admin"},
	)

	_, err := env.groups.UpdateGroup(ctx, as(bob, &api.UpdateGroupRequest{GroupID: groupID, Name: "Mine now"}))
	expectError(t, err, connect.CodePermissionDenied, "FORBIDDEN")

	updated, err := env.groups.UpdateGroup(ctx, as(dave, &api.UpdateGroupRequest{GroupID: groupID, Name: "Flat 5C"}))
	if err != nil {
		t.Fatalf("UpdateGroup by admin failed: %v", err)
	}
	if updated.Msg.Group.Name != "Flat 5C" || updated.Msg.Group.MemberCount != 3 {
		t.Errorf("updated group: unexpected %+v", updated.Msg.Group)
	}

	// Admins manage members but only the owner deletes the group.
	_, err = env.groups.DeleteGroup(ctx, as(dave, &api.DeleteGroupRequest{GroupID: groupID}))
	expectError(t, err, connect.CodePermissionDenied, "FORBIDDEN")

	if _, err := env.groups.DeleteGroup(ctx, as(alice, &api.DeleteGroupRequest{GroupID: groupID})); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	_, err = env.groups.GetGroup(ctx, as(alice, &api.GetGroupRequest{GroupID: groupID}))
	expectError(t, err, connect.CodeNotFound, "NOT_FOUND")
}

func TestAddMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	groupID, _ := env.groupWith(t, alice, &api.AddMemberRequest{DisplayName: "Bob", LinkedUserID: bob.ID})

	tests := []struct {
		name   string
		caller user
		req    *api.AddMemberRequest
		code   connect.Code
		domain string
	}{
		{
			name:   "owner role rejected",
			caller: alice,
			req:    &api.AddMemberRequest{DisplayName: "Eve", Role: "owner"},
			code:   connect.CodeInvalidArgument,
			domain: "VALIDATION_ERROR",
		},
		{
			name:   "unknown role",
			caller: alice,
			req:    &api.AddMemberRequest{DisplayName: "Eve", Role: "boss"},
			code:   connect.CodeInvalidArgument,
			domain: "VALIDATION_ERROR",
		},
		{
			name:   "missing name",
			caller: alice,
			req:    &api.AddMemberRequest{DisplayName: " "},
			code:   connect.CodeInvalidArgument,
			domain: "VALIDATION_ERROR",
		},
		{
			name:   "unknown linked user",
			caller: alice,
			req:    &api.AddMemberRequest{DisplayName: "Ghost", LinkedUserID: uuid.NewString()},
			code:   connect.CodeNotFound,
			domain: "NOT_FOUND",
		},
		{
			name:   "user linked twice",
			caller: alice,
			req:    &api.AddMemberRequest{DisplayName: "Bob again", LinkedUserID: bob.ID},
			code:   connect.CodeInvalidArgument,
			domain: "VALIDATION_ERROR",
		},
		{
			name:   "plain member cannot add",
			caller: bob,
			req:    &api.AddMemberRequest{DisplayName: "Frank"},
			code:   connect.CodePermissionDenied,
			domain: "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.GroupID = groupID
			_, err := env.groups.AddMember(ctx, as(tt.caller, tt.req))
			expectError(t, err, tt.code, tt.domain)
		})
	}

	members, err := env.groups.ListMembers(ctx, as(alice, &api.ListMembersRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members.Msg.Members) != 2 {
		t.Errorf("expected rejected adds to leave 2 members, got %d", len(members.Msg.Members))
	}
}

func TestUpdateMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	dave := env.register(t, "dave")
	groupID, ids := env.groupWith(t, alice,
		&api.AddMemberRequest{DisplayName: "Bob", LinkedUserID: bob.ID},
		&api.AddMemberRequest{DisplayName: "Carol"},
	)
	ownerID, bobID, carolID := ids[0], ids[1], ids[2]

	// Promote Bob, then let him link Carol to Dave's account.
	promoted, err := env.groups.UpdateMember(ctx, as(alice, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: bobID, Role: ptr("admin"),
	}))
	if err != nil {
		t.Fatalf("UpdateMember failed: %v", err)
	}
	if promoted.Msg.Member.Role != "admin" || promoted.Msg.Member.DisplayName != "Bob" {
		t.Errorf("promoted member: unexpected %+v", promoted.Msg.Member)
	}

	linked, err := env.groups.UpdateMember(ctx, as(bob, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: carolID, LinkedUserID: ptr(dave.ID), DisplayName: ptr("Caroline"),
	}))
	if err != nil {
		t.Fatalf("UpdateMember by admin failed: %v", err)
	}
	if linked.Msg.Member.LinkedUserID != dave.ID || linked.Msg.Member.DisplayName != "Caroline" {
		t.Errorf("linked member: unexpected %+v", linked.Msg.Member)
	}

	// Dave now reaches the group through the linked member.
	if _, err := env.groups.GetGroup(ctx, as(dave, &api.GetGroupRequest{GroupID: groupID})); err != nil {
		t.Errorf("GetGroup as newly linked user failed: %v", err)
	}

	_, err = env.groups.UpdateMember(ctx, as(bob, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: ownerID, DisplayName: ptr("Boss"),
	}))
	expectError(t, err, connect.CodePermissionDenied, "FORBIDDEN")

	_, err = env.groups.UpdateMember(ctx, as(alice, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: ownerID, Role: ptr("member"),
	}))
	expectError(t, err, connect.CodeInvalidArgument, "VALIDATION_ERROR")

	_, err = env.groups.UpdateMember(ctx, as(alice, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: bobID, Role: ptr("owner"),
	}))
	expectError(t, err, connect.CodeInvalidArgument, "VALIDATION_ERROR")

	_, err = env.groups.UpdateMember(ctx, as(alice, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: uuid.NewString(), DisplayName: ptr("Nobody"),
	}))
	expectError(t, err, connect.CodeNotFound, "NOT_FOUND")

	renamed, err := env.groups.UpdateMember(ctx, as(alice, &api.UpdateMemberRequest{
		GroupID: groupID, MemberID: ownerID, DisplayName: ptr("Alice A."),
	}))
	if err != nil {
		t.Fatalf("owner renaming themselves failed: %v", err)
	}
	if renamed.Msg.Member.Role != "owner" || renamed.Msg.Member.LinkedUserID != alice.ID {
		t.Errorf("owner member changed unexpectedly: %+v", renamed.Msg.Member)
	}
}

func TestDeleteMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	groupID, ids := env.groupWith(t, alice,
		&api.AddMemberRequest{DisplayName: "Bob"},
		&api.AddMemberRequest{DisplayName: "Carol"},
	)
	ownerID, bobID, carolID := ids[0], ids[1], ids[2]

	if _, err := env.splits.CreateSplit(ctx, as(alice, &api.CreateSplitRequest{
		GroupID: groupID, Title: "Pizza", Type: "expense", TotalAmount: "30",
		OccurredAt: "2026-03-14", SplitMethod: "equal", MemberIDs: []string{ownerID, bobID},
	})); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	_, err := env.groups.DeleteMember(ctx, as(alice, &api.DeleteMemberRequest{GroupID: groupID, MemberID: bobID}))
	details := expectError(t, err, connect.CodeInvalidArgument, "VALIDATION_ERROR")
	if details["memberId"] != bobID {
		t.Errorf("details: expected memberId %s, got %v", bobID, details)
	}

	_, err = env.groups.DeleteMember(ctx, as(alice, &api.DeleteMemberRequest{GroupID: groupID, MemberID: ownerID}))
	expectError(t, err, connect.CodePermissionDenied, "FORBIDDEN")

	if _, err := env.groups.DeleteMember(ctx, as(alice, &api.DeleteMemberRequest{GroupID: groupID, MemberID: carolID})); err != nil {
		t.Fatalf("DeleteMember of unreferenced member failed: %v", err)
	}

	members, err := env.groups.ListMembers(ctx, as(alice, &api.ListMembersRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members.Msg.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members.Msg.Members))
	}
	if members.Msg.Members[1].ID != bobID {
		t.Errorf("expected Bob to persist, got %+v", members.Msg.Members[1])
	}

	_, err = env.groups.DeleteMember(ctx, as(alice, &api.DeleteMemberRequest{GroupID: groupID, MemberID: "not-a-uuid"}))
	expectError(t, err, connect.CodeInvalidArgument, "VALIDATION_ERROR")
}

func TestGetGroupBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	groupID, ids := env.groupWith(t, alice, &api.AddMemberRequest{DisplayName: "Bob"})

	for _, req := range []*api.CreateSplitRequest{
		{Title: "Groceries", Type: "expense", TotalAmount: "60", SplitMethod: "equal"},
		{Title: "Refund", Type: "income", TotalAmount: "3", SplitMethod: "custom",
			CustomAmounts: map[string]any{ids[0]: "1", ids[1]: "2"}},
	} {
		req.GroupID = groupID
		req.OccurredAt = "2026-03-14"
		req.MemberIDs = ids
		if _, err := env.splits.CreateSplit(ctx, as(alice, req)); err != nil {
			t.Fatalf("CreateSplit(%s) failed: %v", req.Title, err)
		}
	}

	resp, err := env.groups.GetGroupBalances(ctx, as(alice, &api.GetGroupBalancesRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if len(resp.Msg.Balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(resp.Msg.Balances))
	}

	want := map[string]struct {
		name            string
		owes, gets, net int64
	}{
		ids[0]: {"alice", 3000, 100, -2900},
		ids[1]: {"Bob", 3000, 200, -2800},
	}
	for _, b := range resp.Msg.Balances {
		w, ok := want[b.MemberID]
		if !ok {
			t.Errorf("unexpected member %s", b.MemberID)
			continue
		}
		if b.DisplayName != w.name || b.OwesMinor != w.owes || b.GetsMinor != w.gets || b.NetMinor != w.net || b.ItemCount != 2 {
			t.Errorf("balance for %s: unexpected %+v", w.name, b)
		}
	}
}
