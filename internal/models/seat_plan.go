package models

import "time"

// SeatPlan is the persisted outcome of one generation run for an exam.
type SeatPlan struct {
	ID          string    `db:"id" json:"id"`
	ExamID      string    `db:"exam_id" json:"exam_id"`
	GeneratedAt time.Time `db:"generated_at" json:"generated_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SeatAssignment stores one seated student in generation order.
type SeatAssignment struct {
	ID          string `db:"id" json:"id"`
	SeatPlanID  string `db:"seat_plan_id" json:"seat_plan_id"`
	Position    int    `db:"position" json:"position"`
	StudentID   string `db:"student_id" json:"student_id"`
	BlockID     string `db:"block_id" json:"block_id"`
	FloorID     string `db:"floor_id" json:"floor_id"`
	ClassroomID string `db:"classroom_id" json:"classroom_id"`
	SeatNumber  int    `db:"seat_number" json:"seat_number"`
	Row         int    `db:"row_no" json:"row"`
	Col         int    `db:"col_no" json:"col"`
}

// SeatAssignmentDetail is an assignment joined with the student and location it references.
type SeatAssignmentDetail struct {
	SeatAssignment
	StudentName       string     `db:"student_name" json:"student_name"`
	RegNumber         string     `db:"reg_number" json:"reg_number"`
	Branch            string     `db:"branch" json:"branch"`
	Year              int        `db:"year" json:"year"`
	Section           string     `db:"section" json:"section"`
	BlockName         string     `db:"block_name" json:"block_name"`
	BlockLocation     string     `db:"block_location" json:"block_location"`
	FloorNumber       int        `db:"floor_number" json:"floor_number"`
	ClassroomName     string     `db:"classroom_name" json:"classroom_name"`
	ClassroomCapacity int        `db:"classroom_capacity" json:"classroom_capacity"`
	LayoutType        LayoutType `db:"layout_type" json:"layout_type"`
}

// SeatPlanDetail is a plan with its exam and populated assignments.
type SeatPlanDetail struct {
	SeatPlan
	Exam        Exam                   `json:"exam"`
	Assignments []SeatAssignmentDetail `json:"assignments"`
}

// SeatPlanStats summarises a generation run.
type SeatPlanStats struct {
	Assigned           int `json:"assigned"`
	Students           int `json:"students"`
	Capacity           int `json:"capacity"`
	Unassigned         int `json:"unassigned"`
	Swaps              int `json:"swaps"`
	ResidualCollisions int `json:"residual_collisions"`
}

// SeatLayout is the grid view of a plan, one entry per classroom.
type SeatLayout struct {
	ExamID     string            `json:"exam_id"`
	SeatPlanID string            `json:"seat_plan_id"`
	Classrooms []ClassroomLayout `json:"classrooms"`
}

// ClassroomLayout renders one classroom as rows of seats.
type ClassroomLayout struct {
	ClassroomID   string         `json:"classroom_id"`
	ClassroomName string         `json:"classroom_name"`
	BlockName     string         `json:"block_name"`
	FloorNumber   int            `json:"floor_number"`
	Capacity      int            `json:"capacity"`
	Columns       int            `json:"columns"`
	Rows          [][]LayoutSeat `json:"rows"`
}

// LayoutSeat is one grid cell; Student is nil for an empty seat.
type LayoutSeat struct {
	SeatNumber int           `json:"seat_number"`
	Row        int           `json:"row"`
	Col        int           `json:"col"`
	Student    *LayoutPerson `json:"student,omitempty"`
}

// LayoutPerson is the student shown in a layout cell.
type LayoutPerson struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RegNumber string `json:"reg_number"`
	Branch    string `json:"branch"`
}
