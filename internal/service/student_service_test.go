package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/repository"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

type studentRepoStub struct {
	students  map[string]*models.Student
	created   []*models.Student
	createErr error
	lastList  models.StudentFilter
}

func newStudentRepoStub(existing ...models.Student) *studentRepoStub {
	stub := &studentRepoStub{students: make(map[string]*models.Student)}
	for i := range existing {
		s := existing[i]
		stub.students[s.ID] = &s
	}
	return stub
}

func (s *studentRepoStub) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	s.lastList = filter
	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, *st)
	}
	return out, len(out), nil
}

func (s *studentRepoStub) ListForExam(ctx context.Context, branches []string, year int) ([]models.Student, error) {
	var out []models.Student
	for _, st := range s.students {
		for _, b := range branches {
			if st.Branch == b && st.Year == year {
				out = append(out, *st)
			}
		}
	}
	return out, nil
}

func (s *studentRepoStub) FindByID(ctx context.Context, id string) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *st
	return &copied, nil
}

func (s *studentRepoStub) ExistsByRegNumber(ctx context.Context, regNumber string, excludeID string) (bool, error) {
	for id, st := range s.students {
		if st.RegNumber == regNumber && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *studentRepoStub) Create(ctx context.Context, student *models.Student) error {
	if s.createErr != nil {
		return s.createErr
	}
	student.ID = "st-" + student.RegNumber
	s.students[student.ID] = student
	s.created = append(s.created, student)
	return nil
}

func (s *studentRepoStub) Update(ctx context.Context, student *models.Student) error {
	s.students[student.ID] = student
	return nil
}

func (s *studentRepoStub) Delete(ctx context.Context, id string) error {
	if _, ok := s.students[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.students, id)
	return nil
}

func TestStudentServiceCreateNormalises(t *testing.T) {
	repo := newStudentRepoStub()
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Create(context.Background(), StudentRequest{
		Name: " Asha Rao ", RegNumber: "21CS001", Branch: "cse", Year: 3, Section: "A",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", student.Name)
	assert.Equal(t, "CSE", student.Branch)
	assert.Nil(t, student.Email)
	assert.Equal(t, "st-21CS001", student.ID)
}

func TestStudentServiceCreateRejectsDuplicateRegNumber(t *testing.T) {
	repo := newStudentRepoStub(models.Student{ID: "s1", RegNumber: "21CS001"})
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Create(context.Background(), StudentRequest{Name: "Other", RegNumber: "21CS001", Branch: "CSE", Year: 3, Section: "A"})
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceCreateMapsRaceToConflict(t *testing.T) {
	repo := newStudentRepoStub()
	repo.createErr = repository.ErrDuplicate
	svc := NewStudentService(repo, nil, nil)

	_, err := svc.Create(context.Background(), StudentRequest{Name: "A", RegNumber: "1", Branch: "CSE", Year: 1, Section: "A"})
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceValidation(t *testing.T) {
	svc := NewStudentService(newStudentRepoStub(), nil, nil)

	_, err := svc.Create(context.Background(), StudentRequest{Name: "A", RegNumber: "1", Branch: "CSE", Year: 5, Section: "A"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(context.Background(), StudentRequest{Name: "A", RegNumber: "1", Branch: "CSE", Year: 1, Section: "A", Email: "nope"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceUpdateAllowsOwnRegNumber(t *testing.T) {
	repo := newStudentRepoStub(models.Student{ID: "s1", Name: "Old", RegNumber: "21CS001", Branch: "CSE", Year: 2, Section: "A"})
	svc := NewStudentService(repo, nil, nil)

	updated, err := svc.Update(context.Background(), "s1", StudentRequest{Name: "New", RegNumber: "21CS001", Branch: "CSE", Year: 3, Section: "B", Email: "new@college.edu"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, 3, updated.Year)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "new@college.edu", *updated.Email)

	_, err = svc.Update(context.Background(), "missing", StudentRequest{Name: "New", RegNumber: "X", Branch: "CSE", Year: 3, Section: "B"})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceListClampsPageSize(t *testing.T) {
	svc := NewStudentService(newStudentRepoStub(), nil, nil)

	_, pagination, err := svc.List(context.Background(), models.StudentFilter{Page: 0, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 500, pagination.PageSize)
}

func TestStudentServiceDelete(t *testing.T) {
	repo := newStudentRepoStub(models.Student{ID: "s1"})
	svc := NewStudentService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "s1"))
	err := svc.Delete(context.Background(), "s1")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentImportWithHeaderAliases(t *testing.T) {
	repo := newStudentRepoStub(models.Student{ID: "existing", RegNumber: "21CS009"})
	svc := NewStudentService(repo, nil, nil)

	csvBody := strings.Join([]string{
		"Name,reg_number,Branch,Year,Section,Email",
		"Asha,21CS001,CSE,3,A,asha@college.edu",
		"Ravi,21EC001,ECE,three,B,",
		",,,,,",
		"Meera,21CS009,CSE,3,A,",
		"Kiran,21ME001,ME,3,C,not-an-email",
		"Dev,21ME002,ME,3,C,",
	}, "\n")

	result, err := svc.Import(context.Background(), strings.NewReader(csvBody))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 3, result.Failed)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "21EC001", result.Errors[0].RegNumber)
	assert.Contains(t, result.Errors[0].Error, "invalid year")

	assert.Equal(t, 5, result.Errors[1].Row)
	assert.Equal(t, "registration number already used", result.Errors[1].Error)

	assert.Equal(t, 6, result.Errors[2].Row)
	assert.Equal(t, "invalid student payload", result.Errors[2].Error)

	require.Len(t, repo.created, 2)
	assert.Equal(t, "21CS001", repo.created[0].RegNumber)
	require.NotNil(t, repo.created[0].Email)
	assert.Equal(t, "21ME002", repo.created[1].RegNumber)
}

func TestStudentImportCamelCaseHeader(t *testing.T) {
	repo := newStudentRepoStub()
	svc := NewStudentService(repo, nil, nil)

	result, err := svc.Import(context.Background(), strings.NewReader("name,regNumber,branch,year,section\nAsha,1,CSE,1,A\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)
}

func TestStudentImportRejectsBadHeader(t *testing.T) {
	svc := NewStudentService(newStudentRepoStub(), nil, nil)

	_, err := svc.Import(context.Background(), strings.NewReader("name,branch,year,section\nAsha,CSE,1,A\n"))
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "regNumber")

	_, err = svc.Import(context.Background(), strings.NewReader(""))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
