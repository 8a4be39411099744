package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

var studentRowColumns = []string{"id", "name", "reg_number", "branch", "year", "section", "email", "created_at", "updated_at"}

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(studentRowColumns).
		AddRow("1", "Asha", "21CS001", "CSE", 2, "A", "asha@uniseat.test", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, reg_number, branch, year, section, email, created_at, updated_at FROM students WHERE branch = ANY($1) AND year = $2 ORDER BY branch ASC, year ASC, reg_number ASC LIMIT 100 OFFSET 0")).
		WithArgs(pq.Array([]string{"CSE"}), 2).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students WHERE branch = ANY($1) AND year = $2")).
		WithArgs(pq.Array([]string{"CSE"}), 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	students, total, err := repo.List(context.Background(), models.StudentFilter{Branches: []string{"CSE"}, Year: 2})
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.NotNil(t, students[0].Email)
	assert.Equal(t, "asha@uniseat.test", *students[0].Email)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListForExam(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(studentRowColumns).
		AddRow("1", "Asha", "21CS001", "CSE", 2, "A", nil, now, now).
		AddRow("2", "Ravi", "21EC001", "ECE", 2, "B", nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM students WHERE branch = ANY($1) AND year = $2 ORDER BY branch ASC, reg_number ASC")).
		WithArgs(pq.Array([]string{"CSE", "ECE"}), 2).
		WillReturnRows(rows)

	students, err := repo.ListForExam(context.Background(), []string{"CSE", "ECE"}, 2)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Nil(t, students[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryExistsByRegNumber(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM students WHERE reg_number = $1 AND id <> $2 LIMIT 1")).
		WithArgs("21CS001", "1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	exists, err := repo.ExistsByRegNumber(context.Background(), "21CS001", "1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WithArgs(sqlmock.AnyArg(), "Asha", "21CS001", "CSE", 2, "A", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.Student{Name: "Asha", RegNumber: "21CS001", Branch: "CSE", Year: 2, Section: "A"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Student{Name: "Asha", RegNumber: "21CS001", Branch: "CSE", Year: 2, Section: "A"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
