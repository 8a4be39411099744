package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

// FloorRepository manages persistence for floors.
type FloorRepository struct {
	db *sqlx.DB
}

// NewFloorRepository constructs a FloorRepository.
func NewFloorRepository(db *sqlx.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

const floorSelect = `SELECT f.id, f.block_id, f.number, f.total_classrooms, f.created_at, f.updated_at, b.name AS block_name
        FROM floors f JOIN blocks b ON b.id = f.block_id`

// List returns floors ordered by block name and floor number.
func (r *FloorRepository) List(ctx context.Context, filter models.FloorFilter) ([]models.FloorDetail, error) {
	query := floorSelect
	var args []interface{}
	if filter.BlockID != "" {
		query += " WHERE f.block_id = $1"
		args = append(args, filter.BlockID)
	}
	query += " ORDER BY b.name ASC, f.number ASC"

	var floors []models.FloorDetail
	if err := r.db.SelectContext(ctx, &floors, query, args...); err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	return floors, nil
}

// FindByID fetches a floor with its block name.
func (r *FloorRepository) FindByID(ctx context.Context, id string) (*models.FloorDetail, error) {
	var floor models.FloorDetail
	if err := r.db.GetContext(ctx, &floor, floorSelect+" WHERE f.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find floor: %w", err)
	}
	return &floor, nil
}

// Create inserts a floor. A repeated (block, number) pair yields ErrDuplicate.
func (r *FloorRepository) Create(ctx context.Context, floor *models.Floor) error {
	if floor.ID == "" {
		floor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if floor.CreatedAt.IsZero() {
		floor.CreatedAt = now
	}
	floor.UpdatedAt = now
	const query = `INSERT INTO floors (id, block_id, number, total_classrooms, created_at, updated_at)
        VALUES (:id, :block_id, :number, :total_classrooms, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, floor); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("create floor: %w", err)
	}
	return nil
}

// Update modifies an existing floor.
func (r *FloorRepository) Update(ctx context.Context, floor *models.Floor) error {
	floor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE floors SET block_id = :block_id, number = :number, total_classrooms = :total_classrooms, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, floor); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("update floor: %w", err)
	}
	return nil
}

// Delete removes a floor and its classrooms.
func (r *FloorRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "floors", id)
}
