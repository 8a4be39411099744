package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

// ClassroomRepository manages persistence for classrooms.
type ClassroomRepository struct {
	db *sqlx.DB
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

const classroomSelect = `SELECT c.id, c.floor_id, c.name, c.capacity, c.layout_type, c.status, c.created_at, c.updated_at,
        f.number AS floor_number, f.block_id, b.name AS block_name
        FROM classrooms c JOIN floors f ON f.id = c.floor_id JOIN blocks b ON b.id = f.block_id`

// classroomOrder is the deterministic seat filling order: block, floor, room.
const classroomOrder = ` ORDER BY b.name ASC, f.number ASC, c.name ASC, c.id ASC`

// List returns classrooms with their floor and block, in seat filling order.
func (r *ClassroomRepository) List(ctx context.Context, filter models.ClassroomFilter) ([]models.ClassroomDetail, error) {
	var conditions []string
	var args []interface{}
	if filter.FloorID != "" {
		args = append(args, filter.FloorID)
		conditions = append(conditions, fmt.Sprintf("c.floor_id = $%d", len(args)))
	}
	if filter.BlockID != "" {
		args = append(args, filter.BlockID)
		conditions = append(conditions, fmt.Sprintf("f.block_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)))
	}

	query := classroomSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += classroomOrder

	var classrooms []models.ClassroomDetail
	if err := r.db.SelectContext(ctx, &classrooms, query, args...); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, nil
}

// ListAvailable returns the classrooms that can host an exam.
func (r *ClassroomRepository) ListAvailable(ctx context.Context) ([]models.ClassroomDetail, error) {
	status := models.ClassroomAvailable
	return r.List(ctx, models.ClassroomFilter{Status: &status})
}

// FindByID fetches a classroom with its floor and block.
func (r *ClassroomRepository) FindByID(ctx context.Context, id string) (*models.ClassroomDetail, error) {
	var classroom models.ClassroomDetail
	if err := r.db.GetContext(ctx, &classroom, classroomSelect+" WHERE c.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find classroom: %w", err)
	}
	return &classroom, nil
}

// Create inserts a classroom. A repeated name on the same floor yields ErrDuplicate.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	if classroom.ID == "" {
		classroom.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if classroom.CreatedAt.IsZero() {
		classroom.CreatedAt = now
	}
	classroom.UpdatedAt = now
	const query = `INSERT INTO classrooms (id, floor_id, name, capacity, layout_type, status, created_at, updated_at)
        VALUES (:id, :floor_id, :name, :capacity, :layout_type, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, classroom); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("create classroom: %w", err)
	}
	return nil
}

// Update modifies an existing classroom.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	classroom.UpdatedAt = time.Now().UTC()
	const query = `UPDATE classrooms SET floor_id = :floor_id, name = :name, capacity = :capacity, layout_type = :layout_type, status = :status, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, classroom); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("update classroom: %w", err)
	}
	return nil
}

// Delete removes a classroom.
func (r *ClassroomRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "classrooms", id)
}
