// Package notify delivers split notifications to external sinks after the
// split has been committed. Delivery is best effort.
package notify

import (
	"context"
	"errors"
	"log/slog"
)

// Message is one notification addressed to a group member.
type Message struct {
	NotificationID     string `json:"notificationId"`
	GroupID            string `json:"groupId"`
	SplitTransactionID string `json:"splitTransactionId"`
	ToMemberID         string `json:"toMemberId"`
	ToUserID           string `json:"toUserId,omitempty"`
	Title              string `json:"title"`
	Body               string `json:"body"`
	CreatedAt          int64  `json:"createdAt"`
}

// Dispatcher hands a message to a delivery channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, msg Message) error

// Dispatch calls f(ctx, msg).
func (f DispatcherFunc) Dispatch(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Multi sends every message to all of its dispatchers. One failing sink does
// not stop the others; their errors are joined.
type Multi []Dispatcher

// Dispatch implements Dispatcher.
func (m Multi) Dispatch(ctx context.Context, msg Message) error {
	var errs []error
	for _, d := range m {
		if err := d.Dispatch(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogDispatcher writes each message as a structured log line.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a LogDispatcher. A nil logger uses slog.Default().
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

// Dispatch implements Dispatcher.
func (d *LogDispatcher) Dispatch(ctx context.Context, msg Message) error {
	d.logger.InfoContext(ctx, "Notification",
		"notification_id", msg.NotificationID,
		"group_id", msg.GroupID,
		"split_id", msg.SplitTransactionID,
		"to_member_id", msg.ToMemberID,
		"to_user_id", msg.ToUserID,
		"title", msg.Title,
		"body", msg.Body,
	)
	return nil
}
