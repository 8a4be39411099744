package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

var examRowColumns = []string{"id", "name", "date", "subject", "branch", "year", "avoid_adjacent_same_branch", "created_at", "updated_at"}

func TestExamRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExamRepository(db)

	date := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM exams WHERE id = $1")).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(examRowColumns).AddRow("e1", "Mid Term", date, "Mathematics", "CSE,ECE", 2, true, date, date))

	exam, err := repo.FindByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE", "ECE"}, exam.Branches())
	assert.True(t, exam.AvoidAdjacentSameBranch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exams WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestExamRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE $1 = ANY(string_to_array(replace(branch, ' ', ''), ',')) AND year = $2 ORDER BY date ASC, name ASC")).
		WithArgs("CSE", 3).
		WillReturnRows(sqlmock.NewRows(examRowColumns))

	exams, err := repo.List(context.Background(), models.ExamFilter{Branch: "CSE", Year: 3})
	require.NoError(t, err)
	assert.Empty(t, exams)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExamRepository(db)

	mock.ExpectExec("INSERT INTO exams").WillReturnResult(sqlmock.NewResult(1, 1))

	exam := &models.Exam{Name: "Finals", Date: time.Now(), Subject: "Physics", Branch: "ME", Year: 1, AvoidAdjacentSameBranch: true}
	require.NoError(t, repo.Create(context.Background(), exam))
	assert.NotEmpty(t, exam.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
