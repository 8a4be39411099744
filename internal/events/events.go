// Package events publishes seat plan lifecycle notifications to RabbitMQ.
package events

import "time"

// Event types emitted by the seat plan service.
const (
	TypeSeatPlanGenerated = "seatplan.generated"
	TypeSeatPlanDeleted   = "seatplan.deleted"
)

// SeatPlanGenerated is emitted once a plan has been persisted.
type SeatPlanGenerated struct {
	ExamID      string    `json:"examId"`
	SeatPlanID  string    `json:"seatPlanId"`
	Assigned    int       `json:"assigned"`
	Students    int       `json:"students"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SeatPlanDeleted is emitted after a plan has been removed.
type SeatPlanDeleted struct {
	ExamID string `json:"examId"`
}

// Envelope is the message body written to the broker.
type Envelope struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}
