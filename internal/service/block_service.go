package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/models"
)

type blockRepository interface {
	List(ctx context.Context) ([]models.Block, error)
	FindByID(ctx context.Context, id string) (*models.Block, error)
	Create(ctx context.Context, block *models.Block) error
	Update(ctx context.Context, block *models.Block) error
	Delete(ctx context.Context, id string) error
}

// BlockRequest is the create and update payload for blocks.
type BlockRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Location    string `json:"location" validate:"required,max=200"`
	TotalFloors int    `json:"total_floors" validate:"required,min=1"`
}

// BlockService manages campus blocks.
type BlockService struct {
	repo      blockRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBlockService constructs BlockService.
func NewBlockService(repo blockRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *BlockService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every block ordered by name.
func (s *BlockService) List(ctx context.Context) ([]models.Block, error) {
	blocks, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "block", "list")
	}
	return blocks, nil
}

// Get returns a single block.
func (s *BlockService) Get(ctx context.Context, id string) (*models.Block, error) {
	block, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "block", "load")
	}
	return block, nil
}

// Create adds a block.
func (s *BlockService) Create(ctx context.Context, req BlockRequest) (*models.Block, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "block")
	}
	block := &models.Block{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		TotalFloors: req.TotalFloors,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, mapRepoError(err, "block", "create")
	}
	return block, nil
}

// Update modifies a block. Cached seat plans embed block names and are dropped.
func (s *BlockService) Update(ctx context.Context, id string, req BlockRequest) (*models.Block, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "block")
	}
	block, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "block", "load")
	}
	block.Name = strings.TrimSpace(req.Name)
	block.Location = strings.TrimSpace(req.Location)
	block.TotalFloors = req.TotalFloors
	if err := s.repo.Update(ctx, block); err != nil {
		return nil, mapRepoError(err, "block", "update")
	}
	_ = s.cache.InvalidateAllSeatPlans(ctx)
	return block, nil
}

// Delete removes a block together with its floors and classrooms.
func (s *BlockService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "block", "delete")
	}
	s.logger.Info("block deleted", zap.String("block_id", id))
	return nil
}
