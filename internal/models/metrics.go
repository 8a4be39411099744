package models

import "time"

// MetricsSnapshot aggregates in-process counters for the admin summary endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	SeatPlansGenerated       uint64    `json:"seat_plans_generated"`
	SeatPlanFailures         uint64    `json:"seat_plan_failures"`
	StudentsSeated           uint64    `json:"students_seated"`
	StudentsUnassigned       uint64    `json:"students_unassigned"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
