package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/repository"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

const (
	blockUUID = "0b6d1f64-8a1e-4c39-9f0c-2d5a6f7e8a01"
	floorUUID = "6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b"
)

type blockRepoStub struct {
	blocks    map[string]*models.Block
	deleteErr error
	updated   int
}

func (s *blockRepoStub) List(ctx context.Context) ([]models.Block, error) {
	var out []models.Block
	for _, b := range s.blocks {
		out = append(out, *b)
	}
	return out, nil
}

func (s *blockRepoStub) FindByID(ctx context.Context, id string) (*models.Block, error) {
	b, ok := s.blocks[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *b
	return &copied, nil
}

func (s *blockRepoStub) Create(ctx context.Context, block *models.Block) error {
	block.ID = blockUUID
	s.blocks[block.ID] = block
	return nil
}

func (s *blockRepoStub) Update(ctx context.Context, block *models.Block) error {
	s.updated++
	s.blocks[block.ID] = block
	return nil
}

func (s *blockRepoStub) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.blocks, id)
	return nil
}

type floorRepoStub struct {
	floors    map[string]*models.FloorDetail
	createErr error
}

func (s *floorRepoStub) List(ctx context.Context, filter models.FloorFilter) ([]models.FloorDetail, error) {
	return nil, nil
}

func (s *floorRepoStub) FindByID(ctx context.Context, id string) (*models.FloorDetail, error) {
	f, ok := s.floors[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *f
	return &copied, nil
}

func (s *floorRepoStub) Create(ctx context.Context, floor *models.Floor) error {
	if s.createErr != nil {
		return s.createErr
	}
	floor.ID = floorUUID
	return nil
}

func (s *floorRepoStub) Update(ctx context.Context, floor *models.Floor) error { return nil }

func (s *floorRepoStub) Delete(ctx context.Context, id string) error { return nil }

type classroomRepoStub struct {
	rooms      map[string]*models.ClassroomDetail
	available  []models.ClassroomDetail
	lastFilter models.ClassroomFilter
}

func (s *classroomRepoStub) List(ctx context.Context, filter models.ClassroomFilter) ([]models.ClassroomDetail, error) {
	s.lastFilter = filter
	return nil, nil
}

func (s *classroomRepoStub) ListAvailable(ctx context.Context) ([]models.ClassroomDetail, error) {
	return s.available, nil
}

func (s *classroomRepoStub) FindByID(ctx context.Context, id string) (*models.ClassroomDetail, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *r
	return &copied, nil
}

func (s *classroomRepoStub) Create(ctx context.Context, classroom *models.Classroom) error {
	classroom.ID = "room-1"
	return nil
}

func (s *classroomRepoStub) Update(ctx context.Context, classroom *models.Classroom) error { return nil }

func (s *classroomRepoStub) Delete(ctx context.Context, id string) error { return nil }

func TestBlockServiceCreateAndUpdate(t *testing.T) {
	repo := &blockRepoStub{blocks: map[string]*models.Block{}}
	cacheRepo := newMemoryCache()
	cacheRepo.items[SeatPlanCacheKey("e1")] = []byte(`{}`)
	svc := NewBlockService(repo, NewCacheService(cacheRepo, nil, 0, nil, true), nil, nil)

	block, err := svc.Create(context.Background(), BlockRequest{Name: " Main Block ", Location: "North", TotalFloors: 3})
	require.NoError(t, err)
	assert.Equal(t, "Main Block", block.Name)

	_, err = svc.Create(context.Background(), BlockRequest{Name: "B", Location: "South", TotalFloors: 0})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	updated, err := svc.Update(context.Background(), block.ID, BlockRequest{Name: "Main", Location: "North", TotalFloors: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.TotalFloors)
	assert.Empty(t, cacheRepo.items, "renaming a block drops cached seat plans")

	_, err = svc.Update(context.Background(), "missing", BlockRequest{Name: "X", Location: "Y", TotalFloors: 1})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestBlockServiceDeleteReferencedBySeatPlan(t *testing.T) {
	repo := &blockRepoStub{blocks: map[string]*models.Block{}, deleteErr: repository.ErrReferenced}
	svc := NewBlockService(repo, nil, nil, nil)

	err := svc.Delete(context.Background(), "b1")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "block is referenced by a seat plan", appErr.Message)
}

func TestFloorServiceCreate(t *testing.T) {
	blocks := &blockRepoStub{blocks: map[string]*models.Block{blockUUID: {ID: blockUUID, Name: "Main"}}}
	floors := &floorRepoStub{floors: map[string]*models.FloorDetail{}}
	svc := NewFloorService(floors, blocks, nil, nil, nil)

	floor, err := svc.Create(context.Background(), FloorRequest{BlockID: blockUUID, Number: 0, TotalClassrooms: 5})
	require.NoError(t, err)
	assert.Equal(t, floorUUID, floor.ID)
	assert.Equal(t, "Main", floor.BlockName)
	assert.Equal(t, 0, floor.Number)

	_, err = svc.Create(context.Background(), FloorRequest{BlockID: "6f1c2a3b-0000-4f60-8a7b-9c0d1e2f3a4b", Number: 1, TotalClassrooms: 5})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	floors.createErr = repository.ErrDuplicate
	_, err = svc.Create(context.Background(), FloorRequest{BlockID: blockUUID, Number: 0, TotalClassrooms: 5})
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestClassroomServiceCreateDefaults(t *testing.T) {
	floors := &floorRepoStub{floors: map[string]*models.FloorDetail{
		floorUUID: {Floor: models.Floor{ID: floorUUID, BlockID: blockUUID, Number: 2}, BlockName: "Main"},
	}}
	svc := NewClassroomService(&classroomRepoStub{}, floors, nil, nil, nil)

	room, err := svc.Create(context.Background(), ClassroomRequest{FloorID: floorUUID, Name: "A201", Capacity: 40})
	require.NoError(t, err)
	assert.Equal(t, models.LayoutStandard, room.LayoutType)
	assert.Equal(t, models.ClassroomAvailable, room.Status)
	assert.Equal(t, 2, room.FloorNumber)
	assert.Equal(t, "Main", room.BlockName)

	_, err = svc.Create(context.Background(), ClassroomRequest{FloorID: floorUUID, Name: "A202", Capacity: 40, LayoutType: "circle"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestClassroomServiceListRejectsUnknownStatus(t *testing.T) {
	repo := &classroomRepoStub{}
	svc := NewClassroomService(repo, &floorRepoStub{}, nil, nil, nil)

	status := models.ClassroomStatus("closed")
	_, err := svc.List(context.Background(), models.ClassroomFilter{Status: &status})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	available := models.ClassroomAvailable
	_, err = svc.List(context.Background(), models.ClassroomFilter{Status: &available, BlockID: blockUUID})
	require.NoError(t, err)
	assert.Equal(t, blockUUID, repo.lastFilter.BlockID)
}
