package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/service"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
	"github.com/Justcode790/UniSeat-backend/pkg/response"
)

type blockService interface {
	List(ctx context.Context) ([]models.Block, error)
	Get(ctx context.Context, id string) (*models.Block, error)
	Create(ctx context.Context, req service.BlockRequest) (*models.Block, error)
	Update(ctx context.Context, id string, req service.BlockRequest) (*models.Block, error)
	Delete(ctx context.Context, id string) error
}

type floorService interface {
	List(ctx context.Context, filter models.FloorFilter) ([]models.FloorDetail, error)
	Get(ctx context.Context, id string) (*models.FloorDetail, error)
	Create(ctx context.Context, req service.FloorRequest) (*models.FloorDetail, error)
	Update(ctx context.Context, id string, req service.FloorRequest) (*models.FloorDetail, error)
	Delete(ctx context.Context, id string) error
}

type classroomService interface {
	List(ctx context.Context, filter models.ClassroomFilter) ([]models.ClassroomDetail, error)
	Get(ctx context.Context, id string) (*models.ClassroomDetail, error)
	Create(ctx context.Context, req service.ClassroomRequest) (*models.ClassroomDetail, error)
	Update(ctx context.Context, id string, req service.ClassroomRequest) (*models.ClassroomDetail, error)
	Delete(ctx context.Context, id string) error
}

// LocationHandler exposes blocks, floors and classrooms.
type LocationHandler struct {
	blocks     blockService
	floors     floorService
	classrooms classroomService
}

// NewLocationHandler constructs LocationHandler.
func NewLocationHandler(blocks blockService, floors floorService, classrooms classroomService) *LocationHandler {
	return &LocationHandler{blocks: blocks, floors: floors, classrooms: classrooms}
}

// ListBlocks godoc
// @Summary List blocks
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /blocks [get]
func (h *LocationHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.blocks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, blocks, nil)
}

// GetBlock godoc
// @Summary Get block
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /blocks/{id} [get]
func (h *LocationHandler) GetBlock(c *gin.Context) {
	block, err := h.blocks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, block, nil)
}

// CreateBlock godoc
// @Summary Create block
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.BlockRequest true "Block payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /blocks [post]
func (h *LocationHandler) CreateBlock(c *gin.Context) {
	var req service.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	block, err := h.blocks.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, block)
}

// UpdateBlock godoc
// @Summary Update block
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Param payload body service.BlockRequest true "Block payload"
// @Success 200 {object} response.Envelope
// @Router /blocks/{id} [put]
func (h *LocationHandler) UpdateBlock(c *gin.Context) {
	var req service.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	block, err := h.blocks.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, block, nil)
}

// DeleteBlock godoc
// @Summary Delete block
// @Tags Locations
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 204
// @Failure 409 {object} response.Envelope
// @Router /blocks/{id} [delete]
func (h *LocationHandler) DeleteBlock(c *gin.Context) {
	if err := h.blocks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListFloors godoc
// @Summary List floors
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param block_id query string false "Filter by block"
// @Success 200 {object} response.Envelope
// @Router /floors [get]
func (h *LocationHandler) ListFloors(c *gin.Context) {
	filter := models.FloorFilter{BlockID: strings.TrimSpace(c.Query("block_id"))}
	floors, err := h.floors.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, floors, nil)
}

// GetFloor godoc
// @Summary Get floor
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor ID"
// @Success 200 {object} response.Envelope
// @Router /floors/{id} [get]
func (h *LocationHandler) GetFloor(c *gin.Context) {
	floor, err := h.floors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, floor, nil)
}

// CreateFloor godoc
// @Summary Create floor
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.FloorRequest true "Floor payload"
// @Success 201 {object} response.Envelope
// @Router /floors [post]
func (h *LocationHandler) CreateFloor(c *gin.Context) {
	var req service.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	floor, err := h.floors.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, floor)
}

// UpdateFloor godoc
// @Summary Update floor
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor ID"
// @Param payload body service.FloorRequest true "Floor payload"
// @Success 200 {object} response.Envelope
// @Router /floors/{id} [put]
func (h *LocationHandler) UpdateFloor(c *gin.Context) {
	var req service.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	floor, err := h.floors.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, floor, nil)
}

// DeleteFloor godoc
// @Summary Delete floor
// @Tags Locations
// @Security BearerAuth
// @Param id path string true "Floor ID"
// @Success 204
// @Router /floors/{id} [delete]
func (h *LocationHandler) DeleteFloor(c *gin.Context) {
	if err := h.floors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListClassrooms godoc
// @Summary List classrooms
// @Description Ordered by block name, floor number and classroom name.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param floor_id query string false "Filter by floor"
// @Param block_id query string false "Filter by block"
// @Param status query string false "available, occupied or maintenance"
// @Success 200 {object} response.Envelope
// @Router /classrooms [get]
func (h *LocationHandler) ListClassrooms(c *gin.Context) {
	filter := models.ClassroomFilter{
		FloorID: strings.TrimSpace(c.Query("floor_id")),
		BlockID: strings.TrimSpace(c.Query("block_id")),
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		s := models.ClassroomStatus(strings.ToLower(status))
		filter.Status = &s
	}
	rooms, err := h.classrooms.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// GetClassroom godoc
// @Summary Get classroom
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Success 200 {object} response.Envelope
// @Router /classrooms/{id} [get]
func (h *LocationHandler) GetClassroom(c *gin.Context) {
	room, err := h.classrooms.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// CreateClassroom godoc
// @Summary Create classroom
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.ClassroomRequest true "Classroom payload"
// @Success 201 {object} response.Envelope
// @Router /classrooms [post]
func (h *LocationHandler) CreateClassroom(c *gin.Context) {
	var req service.ClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.classrooms.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// UpdateClassroom godoc
// @Summary Update classroom
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param payload body service.ClassroomRequest true "Classroom payload"
// @Success 200 {object} response.Envelope
// @Router /classrooms/{id} [put]
func (h *LocationHandler) UpdateClassroom(c *gin.Context) {
	var req service.ClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.classrooms.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// DeleteClassroom godoc
// @Summary Delete classroom
// @Tags Locations
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Success 204
// @Router /classrooms/{id} [delete]
func (h *LocationHandler) DeleteClassroom(c *gin.Context) {
	if err := h.classrooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
