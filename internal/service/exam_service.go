package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

const examDateLayout = "2006-01-02"

type examRepository interface {
	List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error)
	FindByID(ctx context.Context, id string) (*models.Exam, error)
	Create(ctx context.Context, exam *models.Exam) error
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id string) error
}

// ExamRequest is the create and update payload for exams. Branch accepts a
// single code or a comma separated list.
type ExamRequest struct {
	Name                    string `json:"name" validate:"required,max=200"`
	Date                    string `json:"date" validate:"required,datetime=2006-01-02"`
	Subject                 string `json:"subject" validate:"required,max=200"`
	Branch                  string `json:"branch" validate:"required,max=200"`
	Year                    int    `json:"year" validate:"required,min=1,max=4"`
	AvoidAdjacentSameBranch *bool  `json:"avoid_adjacent_same_branch"`
}

// ExamService manages exams.
type ExamService struct {
	repo      examRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService constructs ExamService.
func NewExamService(repo examRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns exams ordered by date.
func (s *ExamService) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error) {
	exams, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "exam", "list")
	}
	return exams, nil
}

// Get returns a single exam.
func (s *ExamService) Get(ctx context.Context, id string) (*models.Exam, error) {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "exam", "load")
	}
	return exam, nil
}

// Create schedules a new exam. Adjacent same-branch avoidance defaults to on.
func (s *ExamService) Create(ctx context.Context, req ExamRequest) (*models.Exam, error) {
	exam := &models.Exam{AvoidAdjacentSameBranch: true}
	if err := s.apply(exam, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, mapRepoError(err, "exam", "create")
	}
	return exam, nil
}

// Update modifies an exam. An existing seat plan is left as generated.
func (s *ExamService) Update(ctx context.Context, id string, req ExamRequest) (*models.Exam, error) {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "exam", "load")
	}
	if err := s.apply(exam, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, mapRepoError(err, "exam", "update")
	}
	_ = s.cache.Invalidate(ctx, SeatPlanCacheKey(id), SeatPlanLayoutCacheKey(id))
	return exam, nil
}

// Delete removes an exam and its seat plan.
func (s *ExamService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "exam", "delete")
	}
	_ = s.cache.Invalidate(ctx, SeatPlanCacheKey(id), SeatPlanLayoutCacheKey(id))
	return nil
}

func (s *ExamService) apply(exam *models.Exam, req ExamRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "exam")
	}
	date, err := time.Parse(examDateLayout, req.Date)
	if err != nil {
		return validationError(err, "exam")
	}

	exam.Name = strings.TrimSpace(req.Name)
	exam.Date = date
	exam.Subject = strings.TrimSpace(req.Subject)
	exam.Branch = strings.ToUpper(strings.Join((models.Exam{Branch: req.Branch}).Branches(), ","))
	exam.Year = req.Year
	if req.AvoidAdjacentSameBranch != nil {
		exam.AvoidAdjacentSameBranch = *req.AvoidAdjacentSameBranch
	}
	if exam.Branch == "" {
		return appErrors.Clone(appErrors.ErrValidation, "exam branch is empty")
	}
	return nil
}
