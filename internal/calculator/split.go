package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeTotal   = errors.New("total cannot be negative")
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrAmountsMismatch = errors.New("amounts do not sum to total")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrOverflow        = errors.New("amounts overflow int64")
)

// SplitEqual divides totalMinor into memberCount integer shares.
//
// Every share is total/memberCount or one more; the first total%memberCount
// shares get the extra unit, so callers must pass members in the order they
// want the remainder assigned. The shares always sum to totalMinor.
func SplitEqual(totalMinor int64, memberCount int) ([]int64, error) {
	if totalMinor < 0 {
		return nil, ErrNegativeTotal
	}
	if memberCount < 1 {
		return nil, ErrNoParticipants
	}

	n := int64(memberCount)
	base := totalMinor / n
	remainder := totalMinor % n

	shares := make([]int64, memberCount)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}
	return shares, nil
}

// Sum adds non-negative minor-unit amounts. It fails with ErrNegativeAmount
// or ErrOverflow instead of wrapping around.
func Sum(amounts []int64) (int64, error) {
	var total int64
	for _, a := range amounts {
		if a < 0 {
			return 0, ErrNegativeAmount
		}
		if a > math.MaxInt64-total {
			return 0, ErrOverflow
		}
		total += a
	}
	return total, nil
}

// CheckTotal returns ErrAmountsMismatch (wrapped with both totals) when the
// amounts do not add up to totalMinor, or the Sum error when they cannot be
// added at all.
func CheckTotal(amounts []int64, totalMinor int64) error {
	got, err := Sum(amounts)
	if err != nil {
		return err
	}
	if got != totalMinor {
		return fmt.Errorf("%w: expected %d, got %d", ErrAmountsMismatch, totalMinor, got)
	}
	return nil
}
