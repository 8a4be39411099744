package models

import (
	"strings"
	"time"
)

// Exam is a scheduled paper taken by one year of one or more branches.
type Exam struct {
	ID                      string    `db:"id" json:"id"`
	Name                    string    `db:"name" json:"name"`
	Date                    time.Time `db:"date" json:"date"`
	Subject                 string    `db:"subject" json:"subject"`
	Branch                  string    `db:"branch" json:"branch"`
	Year                    int       `db:"year" json:"year"`
	AvoidAdjacentSameBranch bool      `db:"avoid_adjacent_same_branch" json:"avoid_adjacent_same_branch"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at" json:"updated_at"`
}

// Branches splits the comma separated branch field into trimmed codes.
func (e Exam) Branches() []string {
	parts := strings.Split(e.Branch, ",")
	branches := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			branches = append(branches, trimmed)
		}
	}
	return branches
}

// ExamFilter narrows exam listings.
type ExamFilter struct {
	Branch string
	Year   int
}
