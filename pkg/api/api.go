// Package api defines the request and response messages of the Pennywise
// RPC services. Messages travel as JSON; see Codec.
package api

import "time"

// User is a registered account.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Group is a group as seen by one of its members.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"ownerUserId"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Member is a person in a group, with or without an account.
type Member struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	DisplayName  string    `json:"displayName"`
	Phone        string    `json:"phone,omitempty"`
	LinkedUserID string    `json:"linkedUserId,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type CreateGroupResponse struct {
	Group *Group  `json:"group"`
	Owner *Member `json:"owner"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group   *Group    `json:"group"`
	Members []*Member `json:"members"`
	// Role is the caller's role in the group.
	Role string `json:"role"`
}

type UpdateGroupRequest struct {
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}

type ListMembersRequest struct {
	GroupID string `json:"groupId"`
}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type AddMemberRequest struct {
	GroupID      string `json:"groupId"`
	DisplayName  string `json:"displayName"`
	Phone        string `json:"phone,omitempty"`
	LinkedUserID string `json:"linkedUserId,omitempty"`
	Role         string `json:"role,omitempty"`
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

// UpdateMemberRequest changes only the fields that are set.
type UpdateMemberRequest struct {
	GroupID      string  `json:"groupId"`
	MemberID     string  `json:"memberId"`
	DisplayName  *string `json:"displayName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	LinkedUserID *string `json:"linkedUserId,omitempty"`
	Role         *string `json:"role,omitempty"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type DeleteMemberRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
}

type DeleteMemberResponse struct{}

// MemberBalance totals one member's split items.
type MemberBalance struct {
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	OwesMinor   int64  `json:"owesMinor"`
	GetsMinor   int64  `json:"getsMinor"`
	NetMinor    int64  `json:"netMinor"`
	ItemCount   int    `json:"itemCount"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupBalancesResponse struct {
	Balances []*MemberBalance `json:"balances"`
}

// SplitTransaction is a shared expense or income.
type SplitTransaction struct {
	ID               string    `json:"id"`
	GroupID          string    `json:"groupId"`
	CreatedByUserID  string    `json:"createdByUserId"`
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	Currency         string    `json:"currency"`
	TotalAmountMinor int64     `json:"totalAmountMinor"`
	TotalAmount      string    `json:"totalAmount"`
	OccurredAt       time.Time `json:"occurredAt"`
	Note             string    `json:"note,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SplitItem is one member's share of a split.
type SplitItem struct {
	ID                 string `json:"id"`
	SplitTransactionID string `json:"splitTransactionId"`
	GroupID            string `json:"groupId"`
	MemberID           string `json:"memberId"`
	AmountMinor        int64  `json:"amountMinor"`
	Amount             string `json:"amount"`
	Direction          string `json:"direction"`
	Position           int    `json:"position"`
}

// MemberSplitItem is a member's share with its split's metadata.
type MemberSplitItem struct {
	SplitItem
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	Currency         string    `json:"currency"`
	TotalAmountMinor int64     `json:"totalAmountMinor"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// CreateSplitRequest carries amounts as JSON strings or numbers; both decode
// to exact decimal text.
type CreateSplitRequest struct {
	GroupID       string         `json:"groupId"`
	Title         string         `json:"title"`
	Type          string         `json:"type"`
	Currency      string         `json:"currency,omitempty"`
	TotalAmount   any            `json:"totalAmount"`
	OccurredAt    string         `json:"occurredAt"`
	Note          string         `json:"note,omitempty"`
	SplitMethod   string         `json:"splitMethod"`
	MemberIDs     []string       `json:"memberIds"`
	CustomAmounts map[string]any `json:"customAmounts,omitempty"`
}

type CreateSplitResponse struct {
	SplitTransaction   *SplitTransaction `json:"splitTransaction"`
	Items              []*SplitItem      `json:"items"`
	NotificationsCount int               `json:"notificationsCount"`
}

type ListSplitsRequest struct {
	GroupID string `json:"groupId"`
}

type ListSplitsResponse struct {
	Splits []*SplitTransaction `json:"splits"`
}

type GetSplitRequest struct {
	GroupID string `json:"groupId"`
	SplitID string `json:"splitId"`
}

type GetSplitResponse struct {
	SplitTransaction *SplitTransaction `json:"splitTransaction"`
	Items            []*SplitItem      `json:"items"`
}

type ListMemberSplitsRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
}

type ListMemberSplitsResponse struct {
	Items []*MemberSplitItem `json:"items"`
}

// Notification is an inbox entry created with a split.
type Notification struct {
	ID                 string    `json:"id"`
	GroupID            string    `json:"groupId"`
	SplitTransactionID string    `json:"splitTransactionId"`
	ToMemberID         string    `json:"toMemberId,omitempty"`
	ToUserID           string    `json:"toUserId,omitempty"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	IsRead             bool      `json:"isRead"`
	CreatedAt          time.Time `json:"createdAt"`
}

type ListNotificationsRequest struct{}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unreadCount"`
}

type MarkNotificationReadRequest struct {
	NotificationID string `json:"notificationId"`
}

type MarkNotificationReadResponse struct {
	Notification *Notification `json:"notification"`
}
