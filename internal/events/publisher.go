package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/pkg/jobs"
)

// Sender delivers an encoded message to the broker.
type Sender interface {
	Send(ctx context.Context, body []byte) error
}

// Publisher announces seat plan lifecycle changes.
type Publisher interface {
	SeatPlanGenerated(ctx context.Context, event SeatPlanGenerated)
	SeatPlanDeleted(ctx context.Context, event SeatPlanDeleted)
}

// NopPublisher discards every event.
type NopPublisher struct{}

// SeatPlanGenerated implements Publisher.
func (NopPublisher) SeatPlanGenerated(context.Context, SeatPlanGenerated) {}

// SeatPlanDeleted implements Publisher.
func (NopPublisher) SeatPlanDeleted(context.Context, SeatPlanDeleted) {}

// QueuePublisher hands events to a background job queue so request handling
// never waits on the broker. Delivery is retried by the queue.
type QueuePublisher struct {
	queue  *jobs.Queue
	logger *zap.Logger
	now    func() time.Time
}

// QueueConfig configures the background delivery queue.
type QueueConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// NewQueuePublisher builds the delivery queue around sender. Start must be
// called before events are accepted.
func NewQueuePublisher(sender Sender, cfg QueueConfig, logger *zap.Logger) *QueuePublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &QueuePublisher{logger: logger, now: func() time.Time { return time.Now().UTC() }}
	p.queue = jobs.NewQueue("seatplan-events", deliver(sender), jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return p
}

// Start launches the delivery workers.
func (p *QueuePublisher) Start(ctx context.Context) {
	p.queue.Start(ctx)
}

// Stop drains pending deliveries until ctx expires.
func (p *QueuePublisher) Stop(ctx context.Context) {
	p.queue.Stop(ctx)
}

// SeatPlanGenerated implements Publisher.
func (p *QueuePublisher) SeatPlanGenerated(_ context.Context, event SeatPlanGenerated) {
	p.publish(TypeSeatPlanGenerated, event)
}

// SeatPlanDeleted implements Publisher.
func (p *QueuePublisher) SeatPlanDeleted(_ context.Context, event SeatPlanDeleted) {
	p.publish(TypeSeatPlanDeleted, event)
}

func (p *QueuePublisher) publish(eventType string, payload interface{}) {
	envelope := Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now(),
		Payload:    payload,
	}
	if err := p.queue.Enqueue(jobs.Job{ID: envelope.ID, Type: eventType, Payload: envelope}); err != nil {
		p.logger.Warn("event dropped", zap.String("type", eventType), zap.String("event_id", envelope.ID), zap.Error(err))
	}
}

func deliver(sender Sender) jobs.Handler {
	return func(ctx context.Context, job jobs.Job) error {
		body, err := json.Marshal(job.Payload)
		if err != nil {
			return fmt.Errorf("encode %s: %w", job.Type, err)
		}
		sendCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return sender.Send(sendCtx, body)
	}
}
