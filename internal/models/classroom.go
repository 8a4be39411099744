package models

import "time"

// LayoutType describes how a classroom's furniture is arranged.
type LayoutType string

const (
	LayoutStandard LayoutType = "standard"
	LayoutTheater  LayoutType = "theater"
	LayoutLab      LayoutType = "lab"
	LayoutSeminar  LayoutType = "seminar"
)

// ClassroomStatus tracks whether a classroom can host an exam.
type ClassroomStatus string

const (
	ClassroomAvailable   ClassroomStatus = "available"
	ClassroomOccupied    ClassroomStatus = "occupied"
	ClassroomMaintenance ClassroomStatus = "maintenance"
)

// Classroom is an exam room on a floor.
type Classroom struct {
	ID         string          `db:"id" json:"id"`
	FloorID    string          `db:"floor_id" json:"floor_id"`
	Name       string          `db:"name" json:"name"`
	Capacity   int             `db:"capacity" json:"capacity"`
	LayoutType LayoutType      `db:"layout_type" json:"layout_type"`
	Status     ClassroomStatus `db:"status" json:"status"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// ClassroomDetail resolves the floor and block a classroom belongs to.
type ClassroomDetail struct {
	Classroom
	FloorNumber int    `db:"floor_number" json:"floor_number"`
	BlockID     string `db:"block_id" json:"block_id"`
	BlockName   string `db:"block_name" json:"block_name"`
}

// ClassroomFilter narrows classroom listings.
type ClassroomFilter struct {
	FloorID string
	BlockID string
	Status  *ClassroomStatus
}
