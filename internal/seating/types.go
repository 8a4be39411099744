// Package seating allocates exam seats to students.
//
// The allocator is a pure in-memory pipeline: classrooms are expanded into seat
// slots, students are dealt onto the slots branch by branch, and a single
// repair sweep swaps students to break up same-branch neighbours in a row.
package seating

import "time"

// Student is a roster entry sitting the exam.
type Student struct {
	ID        string
	Name      string
	RegNumber string
	Branch    string
	Year      int
	Section   string
}

// ClassroomSeatSource is an available classroom with its resolved floor and block.
type ClassroomSeatSource struct {
	ClassroomID   string
	ClassroomName string
	Capacity      int
	FloorID       string
	FloorNumber   int
	BlockID       string
	BlockName     string
}

// SeatSlot is one physical seat position inside a classroom.
type SeatSlot struct {
	BlockID     string
	FloorID     string
	ClassroomID string
	SeatNumber  int
	Row         int
	Col         int
}

// Assignment pairs a student with a seat slot.
type Assignment struct {
	StudentID   string
	BlockID     string
	FloorID     string
	ClassroomID string
	SeatNumber  int
	Row         int
	Col         int
}

// Exam labels a generation run.
type Exam struct {
	ID                      string
	Name                    string
	Branch                  string
	Year                    int
	Date                    time.Time
	AvoidAdjacentSameBranch bool
}
