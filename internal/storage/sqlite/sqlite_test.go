package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedGroup creates a group owned by ownerUserID plus one unlinked member per
// name, returning the group and all members (owner first).
func seedGroup(t *testing.T, store *SQLiteStore, ownerUserID string, names ...string) (*models.Group, []*models.GroupMember) {
	t.Helper()
	ctx := context.Background()

	group := &models.Group{Name: "Flatmates", OwnerUserID: ownerUserID}
	owner := &models.GroupMember{DisplayName: "Owner"}
	if err := store.CreateGroup(ctx, group, owner); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	members := []*models.GroupMember{owner}
	for _, name := range names {
		m := &models.GroupMember{GroupID: group.ID, DisplayName: name, Role: models.RoleMember}
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember(%s) failed: %v", name, err)
		}
		members = append(members, m)
	}
	return group, members
}

// buildSplit returns a header, one item per member and one notification per
// member, the way the split orchestrator assembles them.
func buildSplit(group *models.Group, members []*models.GroupMember, amounts []int64) (*models.SplitTransaction, []*models.SplitTransactionItem, []*models.Notification) {
	var total int64
	for _, a := range amounts {
		total += a
	}
	split := &models.SplitTransaction{
		GroupID:          group.ID,
		CreatedByUserID:  group.OwnerUserID,
		Title:            "Groceries",
		Type:             models.SplitTypeExpense,
		Currency:         "INR",
		TotalAmountMinor: total,
		OccurredAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	var items []*models.SplitTransactionItem
	var notifications []*models.Notification
	for i, m := range members {
		items = append(items, &models.SplitTransactionItem{
			MemberID:    m.ID,
			AmountMinor: amounts[i],
			Direction:   models.DirectionOwes,
			Position:    i,
		})
		notifications = append(notifications, &models.Notification{
			ToMemberID: m.ID,
			ToUserID:   m.LinkedUserID,
			Title:      "New expense split",
			Body:       "Groceries - INR 10.01",
		})
	}
	return split, items, notifications
}

func countRows(t *testing.T, store *SQLiteStore, table string) int {
	t.Helper()
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup creates the owner member", func(t *testing.T) {
		group, members := seedGroup(t, store, "user-1")

		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		owner := members[0]
		if owner.Role != models.RoleOwner {
			t.Errorf("owner role = %s, want owner", owner.Role)
		}
		if owner.LinkedUserID != "user-1" {
			t.Errorf("owner linked user = %s, want user-1", owner.LinkedUserID)
		}

		listed, err := store.ListMembers(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(listed) != 1 || listed[0].ID != owner.ID {
			t.Errorf("ListMembers = %v, want only the owner", listed)
		}
	})

	t.Run("second owner is rejected", func(t *testing.T) {
		group, _ := seedGroup(t, store, "user-2")
		err := store.CreateMember(ctx, &models.GroupMember{
			GroupID:     group.ID,
			DisplayName: "Usurper",
			Role:        models.RoleOwner,
		})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("CreateMember(owner) error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("linked user joins a group only once", func(t *testing.T) {
		group, _ := seedGroup(t, store, "user-3")
		err := store.CreateMember(ctx, &models.GroupMember{
			GroupID:      group.ID,
			DisplayName:  "Owner again",
			LinkedUserID: "user-3",
			Role:         models.RoleMember,
		})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("CreateMember(duplicate link) error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetGroup error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListGroupsForUser includes owned and joined groups", func(t *testing.T) {
		owned, _ := seedGroup(t, store, "user-4", "Bob")
		joined, _ := seedGroup(t, store, "user-5")
		if err := store.CreateMember(ctx, &models.GroupMember{
			GroupID:      joined.ID,
			DisplayName:  "User Four",
			LinkedUserID: "user-4",
			Role:         models.RoleMember,
		}); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}

		groups, err := store.ListGroupsForUser(ctx, "user-4")
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		counts := make(map[string]int)
		for _, g := range groups {
			counts[g.ID] = g.MemberCount
		}
		if len(counts) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(counts))
		}
		if counts[owned.ID] != 2 {
			t.Errorf("owned group member count = %d, want 2", counts[owned.ID])
		}
		if counts[joined.ID] != 2 {
			t.Errorf("joined group member count = %d, want 2", counts[joined.ID])
		}
	})

	t.Run("UpdateGroupName renames", func(t *testing.T) {
		group, _ := seedGroup(t, store, "user-6")
		if err := store.UpdateGroupName(ctx, group.ID, "Trip"); err != nil {
			t.Fatalf("UpdateGroupName failed: %v", err)
		}
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != "Trip" {
			t.Errorf("name = %s, want Trip", got.Name)
		}

		if err := store.UpdateGroupName(ctx, "missing", "x"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateGroupName(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateSplit(t *testing.T) {
	ctx := context.Background()

	t.Run("commits header, items and notifications together", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob", "Carol")
		split, items, notifications := buildSplit(group, members, []int64{334, 333, 333})

		if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
		if split.ID == "" {
			t.Fatal("Expected split ID to be generated")
		}

		if got := countRows(t, store, "split_transaction_items"); got != 3 {
			t.Errorf("items = %d, want 3", got)
		}
		if got := countRows(t, store, "notifications"); got != 3 {
			t.Errorf("notifications = %d, want 3", got)
		}

		stored, err := store.ListSplitItems(ctx, split.ID)
		if err != nil {
			t.Fatalf("ListSplitItems failed: %v", err)
		}
		var sum int64
		for i, item := range stored {
			if item.SplitTransactionID != split.ID {
				t.Errorf("item %d references split %s, want %s", i, item.SplitTransactionID, split.ID)
			}
			if item.MemberID != members[i].ID {
				t.Errorf("item %d member = %s, want %s (allocation order)", i, item.MemberID, members[i].ID)
			}
			sum += item.AmountMinor
		}
		if sum != split.TotalAmountMinor {
			t.Errorf("items sum to %d, want %d", sum, split.TotalAmountMinor)
		}

		got, err := store.GetSplit(ctx, group.ID, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if !got.OccurredAt.Equal(split.OccurredAt) {
			t.Errorf("OccurredAt = %v, want %v", got.OccurredAt, split.OccurredAt)
		}
		if got.Type != models.SplitTypeExpense || got.TotalAmountMinor != 1000 {
			t.Errorf("GetSplit = %+v", got)
		}
	})

	t.Run("failure between items and notifications leaves no rows", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob", "Carol")
		split, items, notifications := buildSplit(group, members, []int64{334, 333, 333})

		injected := errors.New("injected failure")
		store.beforeNotifications = func(ctx context.Context, tx *sql.Tx) error {
			var n int
			if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM split_transaction_items").Scan(&n); err != nil {
				return err
			}
			if n != 3 {
				t.Errorf("items visible inside transaction = %d, want 3", n)
			}
			return injected
		}

		err := store.CreateSplit(ctx, split, items, notifications)
		if !errors.Is(err, injected) {
			t.Fatalf("CreateSplit error = %v, want injected failure", err)
		}

		for _, table := range []string{"split_transactions", "split_transaction_items", "notifications"} {
			if got := countRows(t, store, table); got != 0 {
				t.Errorf("%s has %d rows after rollback, want 0", table, got)
			}
		}
	})

	t.Run("constraint violation in notifications rolls back", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")
		split, items, notifications := buildSplit(group, members, []int64{500, 500})
		notifications[1].ToMemberID = "not-a-member"

		if err := store.CreateSplit(ctx, split, items, notifications); err == nil {
			t.Fatal("Expected CreateSplit to fail on the foreign key")
		}

		for _, table := range []string{"split_transactions", "split_transaction_items", "notifications"} {
			if got := countRows(t, store, table); got != 0 {
				t.Errorf("%s has %d rows after rollback, want 0", table, got)
			}
		}
	})

	t.Run("GetSplit is scoped to the group", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")
		other, _ := seedGroup(t, store, "user-2")
		split, items, notifications := buildSplit(group, members, []int64{1, 1})
		if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		if _, err := store.GetSplit(ctx, other.ID, split.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetSplit(other group) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListSplits orders by occurrence and ListMemberItems joins metadata", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")

		older, olderItems, olderNotes := buildSplit(group, members, []int64{100, 100})
		older.Title = "Older"
		older.OccurredAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		newer, newerItems, newerNotes := buildSplit(group, members, []int64{300, 200})
		newer.Title = "Newer"
		newer.Type = models.SplitTypeIncome

		if err := store.CreateSplit(ctx, older, olderItems, olderNotes); err != nil {
			t.Fatalf("CreateSplit(older) failed: %v", err)
		}
		if err := store.CreateSplit(ctx, newer, newerItems, newerNotes); err != nil {
			t.Fatalf("CreateSplit(newer) failed: %v", err)
		}

		splits, err := store.ListSplits(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListSplits failed: %v", err)
		}
		if len(splits) != 2 || splits[0].Title != "Newer" || splits[1].Title != "Older" {
			t.Fatalf("ListSplits order wrong: %+v", splits)
		}

		memberItems, err := store.ListMemberItems(ctx, group.ID, members[1].ID)
		if err != nil {
			t.Fatalf("ListMemberItems failed: %v", err)
		}
		if len(memberItems) != 2 {
			t.Fatalf("expected 2 member items, got %d", len(memberItems))
		}
		for _, item := range memberItems {
			switch item.Title {
			case "Older":
				if item.AmountMinor != 100 || item.TotalAmountMinor != 200 {
					t.Errorf("older item = %+v", item)
				}
			case "Newer":
				if item.AmountMinor != 200 || item.Type != models.SplitTypeIncome {
					t.Errorf("newer item = %+v", item)
				}
			default:
				t.Errorf("unexpected item title %q", item.Title)
			}
		}

		all, err := store.ListGroupItems(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListGroupItems failed: %v", err)
		}
		if len(all) != 4 {
			t.Errorf("ListGroupItems returned %d items, want 4", len(all))
		}
	})
}

func TestDeleteMember(t *testing.T) {
	ctx := context.Background()

	t.Run("member with split items is protected", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")
		split, items, notifications := buildSplit(group, members, []int64{50, 50})
		if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		err := store.DeleteMember(ctx, group.ID, members[1].ID)
		if !errors.Is(err, storage.ErrMemberReferenced) {
			t.Fatalf("DeleteMember error = %v, want ErrMemberReferenced", err)
		}
		if _, err := store.GetMember(ctx, group.ID, members[1].ID); err != nil {
			t.Errorf("member should still exist: %v", err)
		}
	})

	t.Run("member without items is deleted", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")

		if err := store.DeleteMember(ctx, group.ID, members[1].ID); err != nil {
			t.Fatalf("DeleteMember failed: %v", err)
		}
		if _, err := store.GetMember(ctx, group.ID, members[1].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetMember after delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("foreign key blocks deletes that skip the check", func(t *testing.T) {
		store := newTestStore(t)
		group, members := seedGroup(t, store, "user-1", "Bob")
		split, items, notifications := buildSplit(group, members, []int64{50, 50})
		if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		_, err := store.db.ExecContext(ctx, "DELETE FROM group_members WHERE id = ?", members[1].ID)
		if !isForeignKeyViolation(err) {
			t.Errorf("raw delete error = %v, want foreign key violation", err)
		}
		if _, err := store.GetMember(ctx, group.ID, members[1].ID); err != nil {
			t.Errorf("member should survive the blocked delete: %v", err)
		}

		// A duplicate link is a UNIQUE failure, not a foreign key one.
		dup := &models.GroupMember{GroupID: group.ID, DisplayName: "Twin", LinkedUserID: "user-1", Role: models.RoleMember}
		_, err = store.db.ExecContext(ctx,
			"INSERT INTO group_members (id, group_id, display_name, linked_user_id, role, created_at) VALUES (?, ?, ?, ?, ?, 0)",
			"dup-id", dup.GroupID, dup.DisplayName, dup.LinkedUserID, string(dup.Role))
		if err == nil || isForeignKeyViolation(err) {
			t.Errorf("duplicate link error = %v, want a non foreign key constraint failure", err)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		store := newTestStore(t)
		group, _ := seedGroup(t, store, "user-1")
		if err := store.DeleteMember(ctx, group.ID, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteMember(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestGetMembersByIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "user-1", "Bob", "Carol")
	_, strangers := seedGroup(t, store, "user-2", "Mallory")

	got, err := store.GetMembersByIDs(ctx, group.ID, []string{members[1].ID, members[2].ID, strangers[1].ID, "missing"})
	if err != nil {
		t.Fatalf("GetMembersByIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("GetMembersByIDs returned %d members, want 2", len(got))
	}

	none, err := store.GetMembersByIDs(ctx, group.ID, nil)
	if err != nil || len(none) != 0 {
		t.Errorf("GetMembersByIDs(nil) = %v, %v", none, err)
	}
}

func TestDeleteGroup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "user-1", "Bob")
	split, items, notifications := buildSplit(group, members, []int64{10, 10})
	if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	if err := store.DeleteGroup(ctx, group.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	for _, table := range []string{"groups", "group_members", "split_transactions", "split_transaction_items", "notifications"} {
		if got := countRows(t, store, table); got != 0 {
			t.Errorf("%s has %d rows after DeleteGroup, want 0", table, got)
		}
	}

	if err := store.DeleteGroup(ctx, group.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second DeleteGroup error = %v, want ErrNotFound", err)
	}
}

func TestNotifications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, members := seedGroup(t, store, "user-1")

	linked := &models.GroupMember{GroupID: group.ID, DisplayName: "Bob", LinkedUserID: "user-bob", Role: models.RoleMember}
	if err := store.CreateMember(ctx, linked); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	members = append(members, linked)

	split, items, notifications := buildSplit(group, members, []int64{5, 5})
	// Address Bob's notification by member only; visibility must follow the link.
	notifications[1].ToUserID = ""
	if err := store.CreateSplit(ctx, split, items, notifications); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	bobs, err := store.ListNotificationsForUser(ctx, "user-bob")
	if err != nil {
		t.Fatalf("ListNotificationsForUser failed: %v", err)
	}
	if len(bobs) != 1 || bobs[0].ToMemberID != linked.ID {
		t.Fatalf("Bob's notifications = %+v", bobs)
	}
	if bobs[0].IsRead {
		t.Error("new notification should be unread")
	}

	if _, err := store.MarkNotificationRead(ctx, bobs[0].ID, "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("MarkNotificationRead by another user error = %v, want ErrNotFound", err)
	}

	read, err := store.MarkNotificationRead(ctx, bobs[0].ID, "user-bob")
	if err != nil {
		t.Fatalf("MarkNotificationRead failed: %v", err)
	}
	if !read.IsRead {
		t.Error("notification should be read")
	}

	owners, err := store.ListNotificationsForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListNotificationsForUser failed: %v", err)
	}
	if len(owners) != 1 {
		t.Errorf("owner notifications = %d, want 1", len(owners))
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil || byEmail.ID != user.ID {
		t.Fatalf("GetUserByEmail = %+v, %v", byEmail, err)
	}

	missing, err := store.GetUserByID(ctx, "missing")
	if err != nil || missing != nil {
		t.Errorf("GetUserByID(missing) = %+v, %v; want nil, nil", missing, err)
	}

	dup := models.NewUser("alice@example.com", "Alice 2", "hash")
	if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrDuplicate) {
		t.Errorf("CreateUser(duplicate) error = %v, want ErrDuplicate", err)
	}
}
