package models

// Notification is an inbox entry about a new split. At least one of
// ToMemberID and ToUserID is set.
type Notification struct {
	ID                 string
	GroupID            string
	SplitTransactionID string
	ToMemberID         string
	ToUserID           string
	Title              string
	Body               string
	IsRead             bool
	CreatedAt          int64
}
