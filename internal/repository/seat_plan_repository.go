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

// assignmentBatchSize bounds the rows written per INSERT statement.
const assignmentBatchSize = 500

// SeatPlanRepository stores generated seat plans and their assignments.
type SeatPlanRepository struct {
	db *sqlx.DB
}

// NewSeatPlanRepository constructs a SeatPlanRepository.
func NewSeatPlanRepository(db *sqlx.DB) *SeatPlanRepository {
	return &SeatPlanRepository{db: db}
}

// FindByExamID returns the plan stored for an exam.
func (r *SeatPlanRepository) FindByExamID(ctx context.Context, examID string) (*models.SeatPlan, error) {
	const query = `SELECT id, exam_id, generated_at, created_at FROM seat_plans WHERE exam_id = $1`
	var plan models.SeatPlan
	if err := r.db.GetContext(ctx, &plan, query, examID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find seat plan: %w", err)
	}
	return &plan, nil
}

// ExistsForExam reports whether the exam already has a plan.
func (r *SeatPlanRepository) ExistsForExam(ctx context.Context, examID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM seat_plans WHERE exam_id = $1)`, examID); err != nil {
		return false, fmt.Errorf("check seat plan: %w", err)
	}
	return exists, nil
}

// Create persists the plan and all of its assignments in a single transaction.
// A plan already stored for the exam yields ErrDuplicate.
func (r *SeatPlanRepository) Create(ctx context.Context, plan *models.SeatPlan, assignments []models.SeatAssignment) (err error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if plan.GeneratedAt.IsZero() {
		plan.GeneratedAt = now
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create seat plan: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const planQuery = `INSERT INTO seat_plans (id, exam_id, generated_at, created_at) VALUES (:id, :exam_id, :generated_at, :created_at)`
	if _, err = tx.NamedExecContext(ctx, planQuery, plan); err != nil {
		if translate(err) == ErrDuplicate {
			err = ErrDuplicate
			return err
		}
		return fmt.Errorf("insert seat plan: %w", err)
	}

	rows := make([]models.SeatAssignment, len(assignments))
	for i, a := range assignments {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		a.SeatPlanID = plan.ID
		a.Position = i
		rows[i] = a
	}

	const assignmentQuery = `INSERT INTO seat_assignments (id, seat_plan_id, position, student_id, block_id, floor_id, classroom_id, seat_number, row_no, col_no)
        VALUES (:id, :seat_plan_id, :position, :student_id, :block_id, :floor_id, :classroom_id, :seat_number, :row_no, :col_no)`
	for start := 0; start < len(rows); start += assignmentBatchSize {
		end := start + assignmentBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err = tx.NamedExecContext(ctx, assignmentQuery, rows[start:end]); err != nil {
			return fmt.Errorf("insert seat assignments: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seat plan: %w", err)
	}
	return nil
}

// ListAssignments returns the plan's assignments joined with student and
// location details, in generation order.
func (r *SeatPlanRepository) ListAssignments(ctx context.Context, planID string) ([]models.SeatAssignmentDetail, error) {
	const query = `SELECT a.id, a.seat_plan_id, a.position, a.student_id, a.block_id, a.floor_id, a.classroom_id, a.seat_number, a.row_no, a.col_no,
        s.name AS student_name, s.reg_number, s.branch, s.year, s.section,
        b.name AS block_name, b.location AS block_location, f.number AS floor_number,
        c.name AS classroom_name, c.capacity AS classroom_capacity, c.layout_type
        FROM seat_assignments a
        JOIN students s ON s.id = a.student_id
        JOIN blocks b ON b.id = a.block_id
        JOIN floors f ON f.id = a.floor_id
        JOIN classrooms c ON c.id = a.classroom_id
        WHERE a.seat_plan_id = $1
        ORDER BY a.position ASC`
	var details []models.SeatAssignmentDetail
	if err := r.db.SelectContext(ctx, &details, query, planID); err != nil {
		return nil, fmt.Errorf("list seat assignments: %w", err)
	}
	return details, nil
}

// DeleteByExamID removes the exam's plan; assignments cascade. It returns
// sql.ErrNoRows when the exam has no plan.
func (r *SeatPlanRepository) DeleteByExamID(ctx context.Context, examID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seat_plans WHERE exam_id = $1`, examID)
	if err != nil {
		return fmt.Errorf("delete seat plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete seat plan: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
