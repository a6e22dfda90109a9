// Package splits creates and reads group split transactions.
//
// Create validates a request, allocates the total across the selected members,
// writes the transaction with its items and notifications in one store
// transaction, and then hands the notifications to the fan-out.
package splits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/pennywise/internal/apperr"
	"github.com/mmynk/pennywise/internal/calculator"
	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/money"
	"github.com/mmynk/pennywise/internal/notify"
	"github.com/mmynk/pennywise/internal/storage"
)

// DefaultCurrency is used when a request names none.
const DefaultCurrency = "INR"

// Store is the persistence the orchestrator needs.
type Store interface {
	GetMembersByIDs(ctx context.Context, groupID string, ids []string) ([]*models.GroupMember, error)
	ListMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error)
	GetMember(ctx context.Context, groupID, memberID string) (*models.GroupMember, error)
	storage.SplitStore
}

// CreateRequest is the caller's input for a new split. Amounts are kept as
// received so they can be validated by the money codec.
type CreateRequest struct {
	Title         string
	Type          string
	Currency      string
	TotalAmount   any
	OccurredAt    string
	Note          string
	SplitMethod   string
	MemberIDs     []string
	CustomAmounts map[string]any
}

// Result is a committed split.
type Result struct {
	Split              *models.SplitTransaction
	Items              []*models.SplitTransactionItem
	NotificationsCount int
}

// Detail is one split with its items in allocation order.
type Detail struct {
	Split *models.SplitTransaction
	Items []*models.SplitTransactionItem
}

// Service orchestrates split creation and the split read paths.
type Service struct {
	store           Store
	fanOut          *notify.FanOut
	defaultCurrency string
	created         *prometheus.CounterVec
	logger          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultCurrency overrides DefaultCurrency.
func WithDefaultCurrency(code string) Option {
	return func(s *Service) {
		if code != "" {
			s.defaultCurrency = strings.ToUpper(code)
		}
	}
}

// WithCreatedCounter counts committed splits by type and method.
func WithCreatedCounter(c *prometheus.CounterVec) Option {
	return func(s *Service) { s.created = c }
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service. fanOut may be nil, in which case no external
// delivery is attempted.
func New(store Store, fanOut *notify.FanOut, opts ...Option) *Service {
	s := &Service{
		store:           store,
		fanOut:          fanOut,
		defaultCurrency: DefaultCurrency,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validated is a request that passed the shape checks.
type validated struct {
	title       string
	splitType   models.SplitType
	method      models.SplitMethod
	memberIDs   []string
	occurredAt  time.Time
	totalMinor  int64
	currency    string
	note        string
	customMinor []int64
}

func fieldError(field, message string) *apperr.Error {
	return apperr.Validation(message, map[string]any{"field": field})
}

// dedupe drops repeated ids, keeping the first occurrence's position.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ParseOccurredAt accepts an RFC 3339 timestamp, with or without fractional
// seconds, or a plain YYYY-MM-DD date taken as midnight UTC.
func ParseOccurredAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// validate runs the shape checks in order and returns the first failure.
// Membership is checked separately since it needs the store.
func (s *Service) validate(req CreateRequest) (*validated, error) {
	v := &validated{}

	v.title = strings.TrimSpace(req.Title)
	if v.title == "" {
		return nil, fieldError("title", "title is required")
	}

	splitType, ok := models.ParseSplitType(req.Type)
	if !ok {
		return nil, fieldError("type", "type must be expense or income")
	}
	v.splitType = splitType

	v.memberIDs = dedupe(req.MemberIDs)
	if len(v.memberIDs) < 2 {
		return nil, fieldError("memberIds", "at least 2 members are required")
	}

	occurredAt, ok := ParseOccurredAt(req.OccurredAt)
	if !ok {
		return nil, fieldError("occurredAt", "occurredAt must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	}
	v.occurredAt = occurredAt

	method, ok := models.ParseSplitMethod(req.SplitMethod)
	if !ok {
		return nil, fieldError("splitMethod", "splitMethod must be equal or custom")
	}
	v.method = method

	total, ok := money.ParseAmountToMinor(req.TotalAmount)
	if !ok {
		return nil, fieldError("totalAmount", "totalAmount must be a non-negative amount with at most 2 decimals")
	}
	v.totalMinor = total

	v.currency = s.defaultCurrency
	if c := strings.TrimSpace(req.Currency); c != "" {
		if !isCurrencyCode(c) {
			return nil, fieldError("currency", "currency must be a 3-letter code")
		}
		v.currency = strings.ToUpper(c)
	}

	for _, id := range v.memberIDs {
		if _, err := uuid.Parse(id); err != nil {
			return nil, apperr.Validation("invalid member id", map[string]any{"memberId": id})
		}
	}

	v.note = strings.TrimSpace(req.Note)
	return v, nil
}

// allocate returns one amount per member id, in member order.
func allocate(v *validated, customAmounts map[string]any) ([]int64, error) {
	if v.method == models.SplitMethodEqual {
		shares, err := calculator.SplitEqual(v.totalMinor, len(v.memberIDs))
		if err != nil {
			return nil, apperr.Validation(err.Error(), nil)
		}
		return shares, nil
	}

	amounts := make([]int64, len(v.memberIDs))
	for i, id := range v.memberIDs {
		raw, present := customAmounts[id]
		if !present {
			return nil, apperr.Validation("custom amount missing for member", map[string]any{"memberId": id})
		}
		minor, ok := money.ParseAmountToMinor(raw)
		if !ok {
			return nil, apperr.Validation("custom amount is invalid", map[string]any{"memberId": id})
		}
		// Shares are non-negative, so none can exceed the total.
		if minor > v.totalMinor {
			return nil, apperr.Validation("custom amount exceeds total", map[string]any{
				"memberId":         id,
				"amountMinor":      minor,
				"totalAmountMinor": v.totalMinor,
			})
		}
		amounts[i] = minor
	}

	if err := calculator.CheckTotal(amounts, v.totalMinor); err != nil {
		details := map[string]any{"totalAmountMinor": v.totalMinor}
		if sum, sumErr := calculator.Sum(amounts); sumErr == nil {
			details["totalCustom"] = sum
		}
		return nil, apperr.Validation("custom amounts do not sum to total", details)
	}
	return amounts, nil
}

// Create validates req and commits a split in group on behalf of callerID.
// The caller must already have been authorized for the group.
func (s *Service) Create(ctx context.Context, group *models.Group, callerID string, req CreateRequest) (*Result, error) {
	v, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	found, err := s.store.GetMembersByIDs(ctx, group.ID, v.memberIDs)
	if err != nil {
		return nil, apperr.Internal("failed to load members", err)
	}
	if len(found) != len(v.memberIDs) {
		return nil, apperr.Validation("member list contains members outside this group", map[string]any{
			"memberIds": missingIDs(v.memberIDs, found),
		})
	}
	byID := make(map[string]*models.GroupMember, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	amounts, err := allocate(v, req.CustomAmounts)
	if err != nil {
		return nil, err
	}

	split := &models.SplitTransaction{
		GroupID:          group.ID,
		CreatedByUserID:  callerID,
		Title:            v.title,
		Type:             v.splitType,
		Currency:         v.currency,
		TotalAmountMinor: v.totalMinor,
		OccurredAt:       v.occurredAt,
		Note:             v.note,
	}

	title := fmt.Sprintf("New %s split", v.splitType)
	body := fmt.Sprintf("%s - %s %s", v.title, v.currency, money.FormatMinor(v.totalMinor))

	items := make([]*models.SplitTransactionItem, len(v.memberIDs))
	notifications := make([]*models.Notification, len(v.memberIDs))
	for i, id := range v.memberIDs {
		items[i] = &models.SplitTransactionItem{
			MemberID:    id,
			AmountMinor: amounts[i],
			Direction:   v.splitType.Direction(),
			Position:    i,
		}
		notifications[i] = &models.Notification{
			ToMemberID: id,
			ToUserID:   byID[id].LinkedUserID,
			Title:      title,
			Body:       body,
		}
	}

	if err := s.store.CreateSplit(ctx, split, items, notifications); err != nil {
		s.logger.Error("Failed to create split", "group_id", group.ID, "error", err)
		return nil, apperr.Internal("failed to create split", err)
	}

	s.logger.Info("Split created",
		"split_id", split.ID,
		"group_id", group.ID,
		"type", v.splitType,
		"method", v.method,
		"members", len(items),
		"total_minor", v.totalMinor,
	)
	if s.created != nil {
		s.created.WithLabelValues(string(v.splitType), string(v.method)).Inc()
	}

	s.fanOut.Send(ctx, messages(notifications))

	return &Result{Split: split, Items: items, NotificationsCount: len(notifications)}, nil
}

func missingIDs(want []string, found []*models.GroupMember) []string {
	have := make(map[string]bool, len(found))
	for _, m := range found {
		have[m.ID] = true
	}
	var missing []string
	for _, id := range want {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func messages(notifications []*models.Notification) []notify.Message {
	msgs := make([]notify.Message, len(notifications))
	for i, n := range notifications {
		msgs[i] = notify.Message{
			NotificationID:     n.ID,
			GroupID:            n.GroupID,
			SplitTransactionID: n.SplitTransactionID,
			ToMemberID:         n.ToMemberID,
			ToUserID:           n.ToUserID,
			Title:              n.Title,
			Body:               n.Body,
			CreatedAt:          n.CreatedAt,
		}
	}
	return msgs
}

// List returns the group's splits, most recent occurrence first.
func (s *Service) List(ctx context.Context, group *models.Group) ([]*models.SplitTransaction, error) {
	list, err := s.store.ListSplits(ctx, group.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list splits", err)
	}
	return list, nil
}

// Get returns one split of the group with its items.
func (s *Service) Get(ctx context.Context, group *models.Group, splitID string) (*Detail, error) {
	if _, err := uuid.Parse(splitID); err != nil {
		return nil, apperr.Validation("invalid split id", map[string]any{"splitId": splitID})
	}

	split, err := s.store.GetSplit(ctx, group.ID, splitID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("split not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to get split", err)
	}

	items, err := s.store.ListSplitItems(ctx, split.ID)
	if err != nil {
		return nil, apperr.Internal("failed to get split items", err)
	}
	return &Detail{Split: split, Items: items}, nil
}

// MemberItems returns a member's items, newest first, with split metadata.
func (s *Service) MemberItems(ctx context.Context, group *models.Group, memberID string) ([]*models.MemberSplitItem, error) {
	if _, err := uuid.Parse(memberID); err != nil {
		return nil, apperr.Validation("invalid member id", map[string]any{"memberId": memberID})
	}
	if _, err := s.store.GetMember(ctx, group.ID, memberID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Internal("failed to get member", err)
	}

	items, err := s.store.ListMemberItems(ctx, group.ID, memberID)
	if err != nil {
		return nil, apperr.Internal("failed to list member items", err)
	}
	return items, nil
}

// Balances totals every member's items in the group. Members without items
// are included with zero totals.
func (s *Service) Balances(ctx context.Context, group *models.Group) ([]calculator.MemberBalance, error) {
	members, err := s.store.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list members", err)
	}
	items, err := s.store.ListGroupItems(ctx, group.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list items", err)
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}
	forBalance := make([]calculator.ItemForBalance, len(items))
	for i, item := range items {
		forBalance[i] = calculator.ItemForBalance{
			MemberID:    item.MemberID,
			AmountMinor: item.AmountMinor,
			Gets:        item.Direction == models.DirectionGets,
		}
	}
	return calculator.MemberTotals(forBalance, memberIDs), nil
}
