package models

// Role is a member's permission level inside a group.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may manage the group's members.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

// ParseRole converts a request string into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Group is a set of people who split expenses and income.
//
// The owner is fixed at creation. A GroupMember with RoleOwner linked to
// OwnerUserID is created in the same transaction as the group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// OwnerUserID is the user who created the group.
	OwnerUserID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// GroupSummary is a group as listed for a user, with its member count.
type GroupSummary struct {
	Group
	MemberCount int
}

// GroupMember is one person in a group. A member does not need an account:
// LinkedUserID is empty for people who are tracked by name only.
type GroupMember struct {
	ID           string
	GroupID      string
	DisplayName  string
	Phone        string
	LinkedUserID string
	Role         Role
	CreatedAt    int64
}

// IsOwner reports whether the member holds the owner role.
func (m *GroupMember) IsOwner() bool {
	return m.Role == RoleOwner
}
