package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimeout bounds one fan-out batch.
const DefaultTimeout = 10 * time.Second

// Delivery outcomes recorded in the deliveries counter.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// FanOut runs batches of deliveries in the background. Failures are logged
// and counted, never returned to the caller.
type FanOut struct {
	dispatcher Dispatcher
	timeout    time.Duration
	logger     *slog.Logger
	deliveries *prometheus.CounterVec

	wg sync.WaitGroup
}

// FanOutOption configures a FanOut.
type FanOutOption func(*FanOut)

// WithTimeout sets the deadline for a whole batch.
func WithTimeout(d time.Duration) FanOutOption {
	return func(f *FanOut) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithLogger sets the logger used for delivery failures.
func WithLogger(logger *slog.Logger) FanOutOption {
	return func(f *FanOut) { f.logger = logger }
}

// WithDeliveryCounter records each delivery under an "outcome" label.
func WithDeliveryCounter(c *prometheus.CounterVec) FanOutOption {
	return func(f *FanOut) { f.deliveries = c }
}

// NewFanOut creates a FanOut over dispatcher.
func NewFanOut(dispatcher Dispatcher, opts ...FanOutOption) *FanOut {
	f := &FanOut{
		dispatcher: dispatcher,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Send starts delivering msgs and returns immediately. The batch keeps ctx's
// values but not its cancellation, so it outlives the request that caused it.
func (f *FanOut) Send(ctx context.Context, msgs []Message) {
	if f == nil || f.dispatcher == nil || len(msgs) == 0 {
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				f.logger.Error("Notification dispatcher panicked", "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()

		for _, msg := range msgs {
			if err := f.dispatcher.Dispatch(ctx, msg); err != nil {
				f.logger.Warn("Notification delivery failed",
					"notification_id", msg.NotificationID,
					"to_member_id", msg.ToMemberID,
					"error", err,
				)
				f.observe(OutcomeFailed)
				continue
			}
			f.observe(OutcomeDelivered)
		}
	}()
}

// Wait blocks until every batch started so far has finished.
func (f *FanOut) Wait() {
	if f == nil {
		return
	}
	f.wg.Wait()
}

func (f *FanOut) observe(outcome string) {
	if f.deliveries != nil {
		f.deliveries.WithLabelValues(outcome).Inc()
	}
}
