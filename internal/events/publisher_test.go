package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	failures int
	bodies   [][]byte
}

func (s *recordingSender) Send(ctx context.Context, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("connection reset")
	}
	s.bodies = append(s.bodies, body)
	return nil
}

func (s *recordingSender) messages(t *testing.T) []map[string]interface{} {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]interface{}, 0, len(s.bodies))
	for _, b := range s.bodies {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &m))
		out = append(out, m)
	}
	return out
}

func TestQueuePublisherDeliversEnvelopes(t *testing.T) {
	sender := &recordingSender{}
	pub := NewQueuePublisher(sender, QueueConfig{Workers: 1}, nil)
	generatedAt := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	pub.Start(context.Background())
	pub.SeatPlanGenerated(context.Background(), SeatPlanGenerated{ExamID: "exam-1", SeatPlanID: "plan-1", Assigned: 58, Students: 60, GeneratedAt: generatedAt})
	pub.SeatPlanDeleted(context.Background(), SeatPlanDeleted{ExamID: "exam-1"})
	pub.Stop(context.Background())

	msgs := sender.messages(t)
	require.Len(t, msgs, 2)

	assert.Equal(t, TypeSeatPlanGenerated, msgs[0]["type"])
	assert.NotEmpty(t, msgs[0]["id"])
	payload := msgs[0]["payload"].(map[string]interface{})
	assert.Equal(t, "exam-1", payload["examId"])
	assert.Equal(t, "plan-1", payload["seatPlanId"])
	assert.Equal(t, float64(58), payload["assigned"])
	assert.Equal(t, float64(60), payload["students"])
	assert.Equal(t, "2026-05-04T09:00:00Z", payload["generatedAt"])

	assert.Equal(t, TypeSeatPlanDeleted, msgs[1]["type"])
	assert.Equal(t, map[string]interface{}{"examId": "exam-1"}, msgs[1]["payload"])
}

func TestQueuePublisherRetriesSendFailures(t *testing.T) {
	sender := &recordingSender{failures: 2}
	pub := NewQueuePublisher(sender, QueueConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)

	pub.Start(context.Background())
	pub.SeatPlanDeleted(context.Background(), SeatPlanDeleted{ExamID: "exam-9"})

	require.Eventually(t, func() bool { return len(sender.messages(t)) == 1 }, 2*time.Second, 5*time.Millisecond)
	pub.Stop(context.Background())
}

func TestQueuePublisherDropsBeforeStart(t *testing.T) {
	sender := &recordingSender{}
	pub := NewQueuePublisher(sender, QueueConfig{}, nil)

	pub.SeatPlanDeleted(context.Background(), SeatPlanDeleted{ExamID: "exam-1"})

	assert.Empty(t, sender.messages(t))
}
