package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Justcode790/UniSeat-backend/internal/middleware"
	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/service"
	"github.com/Justcode790/UniSeat-backend/pkg/response"
)

type seatPlanService interface {
	Generate(ctx context.Context, examID string) (*service.GeneratedSeatPlan, error)
	Get(ctx context.Context, examID string) (*models.SeatPlanDetail, bool, error)
	Layout(ctx context.Context, examID string) (*models.SeatLayout, bool, error)
	Export(ctx context.Context, examID, format string) (*service.ExportFile, error)
	Delete(ctx context.Context, examID string) error
}

// SeatPlanHandler exposes seat plan generation and retrieval.
type SeatPlanHandler struct {
	plans seatPlanService
}

// NewSeatPlanHandler constructs SeatPlanHandler.
func NewSeatPlanHandler(plans seatPlanService) *SeatPlanHandler {
	return &SeatPlanHandler{plans: plans}
}

// Generate godoc
// @Summary Generate seat plan
// @Description Seats the exam roster across available classrooms. Students beyond capacity are reported in meta.unassigned.
// @Tags SeatPlans
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /exams/{examId}/seatplan [post]
func (h *SeatPlanHandler) Generate(c *gin.Context) {
	out, err := h.plans.Generate(c.Request.Context(), c.Param("examId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["assigned"] = out.Stats.Assigned
	meta["students"] = out.Stats.Students
	meta["capacity"] = out.Stats.Capacity
	meta["unassigned"] = out.Stats.Unassigned
	meta["swaps"] = out.Stats.Swaps
	meta["residual_collisions"] = out.Stats.ResidualCollisions
	response.JSON(c, http.StatusCreated, out.Plan, nil, meta)
}

// Get godoc
// @Summary Get seat plan
// @Tags SeatPlans
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exams/{examId}/seatplan [get]
func (h *SeatPlanHandler) Get(c *gin.Context) {
	plan, hit, err := h.plans.Get(c.Request.Context(), c.Param("examId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, plan, nil, middleware.ExtractMeta(c))
}

// Layout godoc
// @Summary Get seat plan layout
// @Description Seat grid per classroom, including empty seats.
// @Tags SeatPlans
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exams/{examId}/seatplan/layout [get]
func (h *SeatPlanHandler) Layout(c *gin.Context) {
	layout, hit, err := h.plans.Layout(c.Request.Context(), c.Param("examId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, layout, nil, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Export seat plan
// @Tags SeatPlans
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exams/{examId}/seatplan/export [get]
func (h *SeatPlanHandler) Export(c *gin.Context) {
	file, err := h.plans.Export(c.Request.Context(), c.Param("examId"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// Delete godoc
// @Summary Delete seat plan
// @Tags SeatPlans
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /exams/{examId}/seatplan [delete]
func (h *SeatPlanHandler) Delete(c *gin.Context) {
	if err := h.plans.Delete(c.Request.Context(), c.Param("examId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
