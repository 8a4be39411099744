package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

type examRepoStub struct {
	exams map[string]*models.Exam
}

func (s *examRepoStub) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error) {
	return nil, nil
}

func (s *examRepoStub) FindByID(ctx context.Context, id string) (*models.Exam, error) {
	e, ok := s.exams[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *e
	return &copied, nil
}

func (s *examRepoStub) Create(ctx context.Context, exam *models.Exam) error {
	exam.ID = "exam-1"
	s.exams[exam.ID] = exam
	return nil
}

func (s *examRepoStub) Update(ctx context.Context, exam *models.Exam) error {
	s.exams[exam.ID] = exam
	return nil
}

func (s *examRepoStub) Delete(ctx context.Context, id string) error {
	if _, ok := s.exams[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.exams, id)
	return nil
}

func TestExamServiceCreate(t *testing.T) {
	svc := NewExamService(&examRepoStub{exams: map[string]*models.Exam{}}, nil, nil, nil)

	exam, err := svc.Create(context.Background(), ExamRequest{
		Name: "Mid Sem", Date: "2026-05-04", Subject: "Data Structures", Branch: " cse , ece ", Year: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "CSE,ECE", exam.Branch)
	assert.Equal(t, []string{"CSE", "ECE"}, exam.Branches())
	assert.True(t, exam.AvoidAdjacentSameBranch)
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), exam.Date)
}

func TestExamServiceCreateValidation(t *testing.T) {
	svc := NewExamService(&examRepoStub{exams: map[string]*models.Exam{}}, nil, nil, nil)

	cases := map[string]ExamRequest{
		"bad date":     {Name: "X", Date: "04/05/2026", Subject: "S", Branch: "CSE", Year: 1},
		"year too big": {Name: "X", Date: "2026-05-04", Subject: "S", Branch: "CSE", Year: 5},
		"blank branch": {Name: "X", Date: "2026-05-04", Subject: "S", Branch: " , ", Year: 1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), req)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}
}

func TestExamServiceUpdateKeepsFlagWhenOmitted(t *testing.T) {
	repo := &examRepoStub{exams: map[string]*models.Exam{
		"exam-1": {ID: "exam-1", Name: "Old", Branch: "CSE", Year: 1, AvoidAdjacentSameBranch: false},
	}}
	cacheRepo := newMemoryCache()
	cacheRepo.items[SeatPlanCacheKey("exam-1")] = []byte(`{}`)
	svc := NewExamService(repo, NewCacheService(cacheRepo, nil, 0, nil, true), nil, nil)

	exam, err := svc.Update(context.Background(), "exam-1", ExamRequest{Name: "New", Date: "2026-06-01", Subject: "S", Branch: "CSE", Year: 1})
	require.NoError(t, err)
	assert.Equal(t, "New", exam.Name)
	assert.False(t, exam.AvoidAdjacentSameBranch)
	assert.Empty(t, cacheRepo.items)

	on := true
	exam, err = svc.Update(context.Background(), "exam-1", ExamRequest{Name: "New", Date: "2026-06-01", Subject: "S", Branch: "CSE", Year: 1, AvoidAdjacentSameBranch: &on})
	require.NoError(t, err)
	assert.True(t, exam.AvoidAdjacentSameBranch)
}

func TestExamServiceDeleteMissing(t *testing.T) {
	svc := NewExamService(&examRepoStub{exams: map[string]*models.Exam{}}, nil, nil, nil)

	err := svc.Delete(context.Background(), "nope")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
