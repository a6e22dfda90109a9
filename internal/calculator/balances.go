package calculator

import "sort"

// ItemForBalance represents a split item with the minimal information needed
// for balance calculations.
type ItemForBalance struct {
	MemberID    string
	AmountMinor int64
	Gets        bool // true for income items, false for expense items
}

// MemberBalance is the running total for one group member, in minor units.
type MemberBalance struct {
	MemberID  string
	OwesMinor int64 // Sum of the member's expense shares
	GetsMinor int64 // Sum of the member's income shares
	NetMinor  int64 // GetsMinor - OwesMinor; negative means the member owes
	ItemCount int
}

// MemberTotals aggregates split items into one balance per member.
// Members without items are included with zero totals when listed in
// memberIDs. The result is sorted by member ID.
func MemberTotals(items []ItemForBalance, memberIDs []string) []MemberBalance {
	balances := make(map[string]*MemberBalance, len(memberIDs))
	for _, id := range memberIDs {
		balances[id] = &MemberBalance{MemberID: id}
	}

	for _, item := range items {
		bal, ok := balances[item.MemberID]
		if !ok {
			bal = &MemberBalance{MemberID: item.MemberID}
			balances[item.MemberID] = bal
		}
		if item.Gets {
			bal.GetsMinor += item.AmountMinor
		} else {
			bal.OwesMinor += item.AmountMinor
		}
		bal.ItemCount++
	}

	result := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.NetMinor = bal.GetsMinor - bal.OwesMinor
		result = append(result, *bal)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MemberID < result[j].MemberID
	})
	return result
}
