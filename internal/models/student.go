package models

import "time"

// Student is a learner who may sit exams.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	RegNumber string    `db:"reg_number" json:"reg_number"`
	Branch    string    `db:"branch" json:"branch"`
	Year      int       `db:"year" json:"year"`
	Section   string    `db:"section" json:"section"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Branches []string
	Year     int
	Section  string
	Page     int
	PageSize int
}
