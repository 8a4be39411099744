package models

import "time"

// Block is a campus building holding one or more floors.
type Block struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	TotalFloors int       `db:"total_floors" json:"total_floors"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Floor is a numbered level inside a block.
type Floor struct {
	ID              string    `db:"id" json:"id"`
	BlockID         string    `db:"block_id" json:"block_id"`
	Number          int       `db:"number" json:"number"`
	TotalClassrooms int       `db:"total_classrooms" json:"total_classrooms"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// FloorDetail decorates a floor with its block name.
type FloorDetail struct {
	Floor
	BlockName string `db:"block_name" json:"block_name"`
}

// FloorFilter narrows floor listings.
type FloorFilter struct {
	BlockID string
}
