package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

type floorRepository interface {
	List(ctx context.Context, filter models.FloorFilter) ([]models.FloorDetail, error)
	FindByID(ctx context.Context, id string) (*models.FloorDetail, error)
	Create(ctx context.Context, floor *models.Floor) error
	Update(ctx context.Context, floor *models.Floor) error
	Delete(ctx context.Context, id string) error
}

// FloorRequest is the create and update payload for floors.
type FloorRequest struct {
	BlockID         string `json:"block_id" validate:"required,uuid"`
	Number          int    `json:"number" validate:"min=0"`
	TotalClassrooms int    `json:"total_classrooms" validate:"required,min=1"`
}

// FloorService manages floors inside blocks.
type FloorService struct {
	repo      floorRepository
	blocks    blockRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFloorService constructs FloorService.
func NewFloorService(repo floorRepository, blocks blockRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *FloorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FloorService{repo: repo, blocks: blocks, cache: cache, validator: validate, logger: logger}
}

// List returns floors, optionally for a single block.
func (s *FloorService) List(ctx context.Context, filter models.FloorFilter) ([]models.FloorDetail, error) {
	floors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "floor", "list")
	}
	return floors, nil
}

// Get returns a floor with its block name.
func (s *FloorService) Get(ctx context.Context, id string) (*models.FloorDetail, error) {
	floor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "floor", "load")
	}
	return floor, nil
}

// Create adds a floor to an existing block.
func (s *FloorService) Create(ctx context.Context, req FloorRequest) (*models.FloorDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "floor")
	}
	block, err := s.blocks.FindByID(ctx, req.BlockID)
	if err != nil {
		return nil, mapRepoError(err, "block", "load")
	}

	floor := models.Floor{BlockID: block.ID, Number: req.Number, TotalClassrooms: req.TotalClassrooms}
	if err := s.repo.Create(ctx, &floor); err != nil {
		return nil, mapRepoError(err, "floor", "create")
	}
	return &models.FloorDetail{Floor: floor, BlockName: block.Name}, nil
}

// Update modifies a floor, possibly moving it to another block.
func (s *FloorService) Update(ctx context.Context, id string, req FloorRequest) (*models.FloorDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "floor")
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "floor", "load")
	}
	block, err := s.blocks.FindByID(ctx, req.BlockID)
	if err != nil {
		return nil, mapRepoError(err, "block", "load")
	}

	floor := existing.Floor
	floor.BlockID = block.ID
	floor.Number = req.Number
	floor.TotalClassrooms = req.TotalClassrooms
	if err := s.repo.Update(ctx, &floor); err != nil {
		return nil, mapRepoError(err, "floor", "update")
	}
	_ = s.cache.InvalidateAllSeatPlans(ctx)
	return &models.FloorDetail{Floor: floor, BlockName: block.Name}, nil
}

// Delete removes a floor together with its classrooms.
func (s *FloorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "floor", "delete")
	}
	return nil
}
