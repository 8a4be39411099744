package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	ListForExam(ctx context.Context, branches []string, year int) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByRegNumber(ctx context.Context, regNumber string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentRequest is the create and update payload for students.
type StudentRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	RegNumber string `json:"reg_number" validate:"required,max=50"`
	Branch    string `json:"branch" validate:"required,max=50"`
	Year      int    `json:"year" validate:"required,min=1,max=4"`
	Section   string `json:"section" validate:"required,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns students ordered by branch, year and registration number.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, mapRepoError(err, "student", "list")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 100
	}
	if size > 500 {
		size = 500
	}
	return students, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "student", "load")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "student")
	}
	student := &models.Student{}
	applyStudentRequest(student, req)

	exists, err := s.repo.ExistsByRegNumber(ctx, student.RegNumber, "")
	if err != nil {
		return nil, mapRepoError(err, "student", "check")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "registration number already used")
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, mapRepoError(err, "student", "create")
	}
	return student, nil
}

// Update modifies a student.
func (s *StudentService) Update(ctx context.Context, id string, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "student")
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "student", "load")
	}
	applyStudentRequest(student, req)

	exists, err := s.repo.ExistsByRegNumber(ctx, student.RegNumber, id)
	if err != nil {
		return nil, mapRepoError(err, "student", "check")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "registration number already used")
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, mapRepoError(err, "student", "update")
	}
	return student, nil
}

// Delete removes a student. Seats they hold in existing plans are released.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "student", "delete")
	}
	return nil
}

func applyStudentRequest(student *models.Student, req StudentRequest) {
	student.Name = strings.TrimSpace(req.Name)
	student.RegNumber = strings.TrimSpace(req.RegNumber)
	student.Branch = strings.ToUpper(strings.TrimSpace(req.Branch))
	student.Year = req.Year
	student.Section = strings.TrimSpace(req.Section)
	student.Email = nil
	if email := strings.TrimSpace(req.Email); email != "" {
		student.Email = &email
	}
}
