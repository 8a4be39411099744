package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

type classroomRepository interface {
	List(ctx context.Context, filter models.ClassroomFilter) ([]models.ClassroomDetail, error)
	ListAvailable(ctx context.Context) ([]models.ClassroomDetail, error)
	FindByID(ctx context.Context, id string) (*models.ClassroomDetail, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	Update(ctx context.Context, classroom *models.Classroom) error
	Delete(ctx context.Context, id string) error
}

// ClassroomRequest is the create and update payload for classrooms.
type ClassroomRequest struct {
	FloorID    string                 `json:"floor_id" validate:"required,uuid"`
	Name       string                 `json:"name" validate:"required,max=100"`
	Capacity   int                    `json:"capacity" validate:"required,min=1,max=1000"`
	LayoutType models.LayoutType      `json:"layout_type" validate:"omitempty,oneof=standard theater lab seminar"`
	Status     models.ClassroomStatus `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

// ClassroomService manages exam rooms.
type ClassroomService struct {
	repo      classroomRepository
	floors    floorRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService constructs ClassroomService.
func NewClassroomService(repo classroomRepository, floors floorRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{repo: repo, floors: floors, cache: cache, validator: validate, logger: logger}
}

// List returns classrooms ordered by block name, floor number and room name.
func (s *ClassroomService) List(ctx context.Context, filter models.ClassroomFilter) ([]models.ClassroomDetail, error) {
	if filter.Status != nil {
		switch *filter.Status {
		case models.ClassroomAvailable, models.ClassroomOccupied, models.ClassroomMaintenance:
		default:
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid classroom status")
		}
	}
	classrooms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "classroom", "list")
	}
	return classrooms, nil
}

// Get returns a classroom with its floor and block.
func (s *ClassroomService) Get(ctx context.Context, id string) (*models.ClassroomDetail, error) {
	classroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "classroom", "load")
	}
	return classroom, nil
}

// Create adds a classroom. Layout defaults to standard and status to available.
func (s *ClassroomService) Create(ctx context.Context, req ClassroomRequest) (*models.ClassroomDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "classroom")
	}
	floor, err := s.floors.FindByID(ctx, req.FloorID)
	if err != nil {
		return nil, mapRepoError(err, "floor", "load")
	}

	classroom := models.Classroom{FloorID: floor.ID}
	applyClassroomRequest(&classroom, req)
	if err := s.repo.Create(ctx, &classroom); err != nil {
		return nil, mapRepoError(err, "classroom", "create")
	}
	return classroomDetail(classroom, floor), nil
}

// Update modifies a classroom.
func (s *ClassroomService) Update(ctx context.Context, id string, req ClassroomRequest) (*models.ClassroomDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "classroom")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "classroom", "load")
	}
	floor, err := s.floors.FindByID(ctx, req.FloorID)
	if err != nil {
		return nil, mapRepoError(err, "floor", "load")
	}

	classroom := existing.Classroom
	classroom.FloorID = floor.ID
	applyClassroomRequest(&classroom, req)
	if err := s.repo.Update(ctx, &classroom); err != nil {
		return nil, mapRepoError(err, "classroom", "update")
	}
	_ = s.cache.InvalidateAllSeatPlans(ctx)
	return classroomDetail(classroom, floor), nil
}

// Delete removes a classroom.
func (s *ClassroomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "classroom", "delete")
	}
	return nil
}

func applyClassroomRequest(c *models.Classroom, req ClassroomRequest) {
	c.Name = strings.TrimSpace(req.Name)
	c.Capacity = req.Capacity
	c.LayoutType = req.LayoutType
	if c.LayoutType == "" {
		c.LayoutType = models.LayoutStandard
	}
	c.Status = req.Status
	if c.Status == "" {
		c.Status = models.ClassroomAvailable
	}
}

func classroomDetail(c models.Classroom, floor *models.FloorDetail) *models.ClassroomDetail {
	return &models.ClassroomDetail{Classroom: c, FloorNumber: floor.Number, BlockID: floor.BlockID, BlockName: floor.BlockName}
}
