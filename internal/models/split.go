package models

import "time"

// SplitType tells whether a split records money spent or money received.
type SplitType string

const (
	SplitTypeExpense SplitType = "expense"
	SplitTypeIncome  SplitType = "income"
)

// ParseSplitType converts a request string into a SplitType.
func ParseSplitType(s string) (SplitType, bool) {
	switch t := SplitType(s); t {
	case SplitTypeExpense, SplitTypeIncome:
		return t, true
	}
	return "", false
}

// Direction returns the item direction every member of a split of this type
// receives.
func (t SplitType) Direction() Direction {
	switch t {
	case SplitTypeIncome:
		return DirectionGets
	case SplitTypeExpense:
		return DirectionOwes
	}
	return DirectionOwes
}

// SplitMethod selects how the total is divided among members.
type SplitMethod string

const (
	SplitMethodEqual  SplitMethod = "equal"
	SplitMethodCustom SplitMethod = "custom"
)

// ParseSplitMethod converts a request string into a SplitMethod.
func ParseSplitMethod(s string) (SplitMethod, bool) {
	switch m := SplitMethod(s); m {
	case SplitMethodEqual, SplitMethodCustom:
		return m, true
	}
	return "", false
}

// Direction is whether a member owes their share or receives it.
type Direction string

const (
	DirectionOwes Direction = "owes"
	DirectionGets Direction = "gets"
)

// SplitTransaction is a shared expense or income recorded in a group.
// It is immutable once created.
type SplitTransaction struct {
	ID               string
	GroupID          string
	CreatedByUserID  string
	Title            string
	Type             SplitType
	Currency         string
	TotalAmountMinor int64
	OccurredAt       time.Time
	Note             string
	CreatedAt        int64
}

// SplitTransactionItem is one member's share of a split.
//
// For a given split the AmountMinor values of its items sum to the split's
// TotalAmountMinor, and all items carry the same Direction.
type SplitTransactionItem struct {
	ID                 string
	SplitTransactionID string
	GroupID            string
	MemberID           string
	AmountMinor        int64
	Direction          Direction

	// Position is the member's index in the allocation order.
	Position  int
	CreatedAt int64
}

// MemberSplitItem is an item joined with the metadata of its split, as listed
// for a single member.
type MemberSplitItem struct {
	SplitTransactionItem
	Title            string
	Type             SplitType
	Currency         string
	TotalAmountMinor int64
	OccurredAt       time.Time
}
