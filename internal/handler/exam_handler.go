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

type examService interface {
	List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, error)
	Get(ctx context.Context, id string) (*models.Exam, error)
	Create(ctx context.Context, req service.ExamRequest) (*models.Exam, error)
	Update(ctx context.Context, id string, req service.ExamRequest) (*models.Exam, error)
	Delete(ctx context.Context, id string) error
}

// ExamHandler exposes exam endpoints.
type ExamHandler struct {
	exams examService
}

// NewExamHandler constructs ExamHandler.
func NewExamHandler(exams examService) *ExamHandler {
	return &ExamHandler{exams: exams}
}

// List godoc
// @Summary List exams
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param branch query string false "Filter by branch"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.ExamFilter{Branch: strings.ToUpper(strings.TrimSpace(c.Query("branch"))), Year: year}

	exams, err := h.exams.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams, nil)
}

// Get godoc
// @Summary Get exam
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exams/{examId} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.exams.Get(c.Request.Context(), c.Param("examId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam, nil)
}

// Create godoc
// @Summary Create exam
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.ExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req service.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.exams.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Update godoc
// @Summary Update exam
// @Description An existing seat plan is kept; delete and regenerate it to apply roster changes.
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Param payload body service.ExamRequest true "Exam payload"
// @Success 200 {object} response.Envelope
// @Router /exams/{examId} [put]
func (h *ExamHandler) Update(c *gin.Context) {
	var req service.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.exams.Update(c.Request.Context(), c.Param("examId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam, nil)
}

// Delete godoc
// @Summary Delete exam
// @Description Deletes the exam together with its seat plan.
// @Tags Exams
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 204
// @Router /exams/{examId} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	if err := h.exams.Delete(c.Request.Context(), c.Param("examId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
