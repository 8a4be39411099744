package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

const studentColumns = `id, name, reg_number, branch, year, section, email, created_at, updated_at`

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters ordered by branch, year and registration number.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	var conditions []string
	var args []interface{}
	if len(filter.Branches) > 0 {
		args = append(args, pq.Array(filter.Branches))
		conditions = append(conditions, fmt.Sprintf("branch = ANY($%d)", len(args)))
	}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Section != "" {
		args = append(args, filter.Section)
		conditions = append(conditions, fmt.Sprintf("section = $%d", len(args)))
	}

	base := "FROM students"
	if len(conditions) > 0 {
		base += " WHERE " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 500 {
		size = 100
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY branch ASC, year ASC, reg_number ASC LIMIT %d OFFSET %d", studentColumns, base, size, offset)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// ListForExam returns the full roster for the given branches and year, ordered
// by branch then registration number.
func (r *StudentRepository) ListForExam(ctx context.Context, branches []string, year int) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE branch = ANY($1) AND year = $2 ORDER BY branch ASC, reg_number ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, pq.Array(branches), year); err != nil {
		return nil, fmt.Errorf("list exam roster: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

// ExistsByRegNumber checks if a registration number is taken, optionally excluding an ID.
func (r *StudentRepository) ExistsByRegNumber(ctx context.Context, regNumber string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM students WHERE reg_number = $1"
	args := []interface{}{regNumber}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check reg number: %w", err)
	}
	return true, nil
}

// Create inserts a new student record. A taken registration number yields ErrDuplicate.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	const query = `INSERT INTO students (id, name, reg_number, branch, year, section, email, created_at, updated_at)
        VALUES (:id, :name, :reg_number, :branch, :year, :section, :email, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update modifies an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET name = :name, reg_number = :reg_number, branch = :branch, year = :year, section = :section, email = :email, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if translated := translate(err); translated == ErrDuplicate {
			return translated
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student and any seat they hold.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "students", id)
}
