package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPSender writes messages to a durable queue through the default exchange.
// The connection is dialed lazily and re-established after the broker drops it.
type AMQPSender struct {
	url    string
	queue  string
	logger *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPSender constructs a sender for the given broker URL and queue.
func NewAMQPSender(url, queue string, logger *zap.Logger) *AMQPSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AMQPSender{url: url, queue: queue, logger: logger}
}

// Send publishes body as a persistent JSON message.
func (s *AMQPSender) Send(ctx context.Context, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", s.queue, false, false, msg); err != nil {
		s.reset()
		return fmt.Errorf("publish to %s: %w", s.queue, err)
	}
	return nil
}

// Close releases the channel and connection.
func (s *AMQPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.ch != nil {
		err = s.ch.Close()
	}
	if s.conn != nil {
		if cerr := s.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	s.ch, s.conn = nil, nil
	return err
}

func (s *AMQPSender) channel() (*amqp.Channel, error) {
	if s.ch != nil && !s.ch.IsClosed() && s.conn != nil && !s.conn.IsClosed() {
		return s.ch, nil
	}
	s.reset()

	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", s.queue, err)
	}

	s.conn, s.ch = conn, ch
	s.logger.Info("rabbitmq channel ready", zap.String("queue", s.queue))
	return ch, nil
}

func (s *AMQPSender) reset() {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.ch, s.conn = nil, nil
}
