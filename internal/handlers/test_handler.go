package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/studyforge/scoring-service/internal/errors"
	"github.com/studyforge/scoring-service/internal/models"
	"github.com/studyforge/scoring-service/internal/services"
	"github.com/studyforge/scoring-service/internal/utils"
	"github.com/studyforge/scoring-service/internal/validator"
)

type TestHandler struct {
	BaseHandler
	testService services.TestService
	validator   *validator.Validator
}

type StartTestRequest struct {
	Questions []models.Question `json:"questions"`
}

type SubmitAnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
}

type SubmitTestRequest struct {
	// TimeTaken overrides the server-measured elapsed seconds when the UI
	// supplies its own timer reading.
	TimeTaken *float64 `json:"time_taken" validate:"omitempty,min=0"`
}

func NewTestHandler(testService services.TestService, v *validator.Validator, logger utils.Logger) *TestHandler {
	return &TestHandler{
		BaseHandler: NewBaseHandler(logger),
		testService: testService,
		validator:   v,
	}
}

// StartTest opens a test session from a generated question batch
// @Summary Start a mock test
// @Description Opens a session; an invalid batch is replaced with the built-in fallback questions
// @Tags tests
// @Accept json
// @Produce json
// @Success 201 {object} services.StartedTest
// @Failure 400 {object} ErrorResponse
// @Router /tests [post]
func (h *TestHandler) StartTest(c *gin.Context) {
	var req StartTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Starting test", "question_count", len(req.Questions))

	started, err := h.testService.StartTest(c.Request.Context(), req.Questions)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, started)
}

// SubmitAnswer records one answer for an open session
// @Summary Submit an answer
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tests/{id}/answers [put]
func (h *TestHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: apperrors.ToValidationErrors(err),
		})
		return
	}

	if err := h.testService.SubmitAnswer(c.Request.Context(), sessionID, req.Question, req.Answer); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Answer recorded"})
}

// SubmitTest scores the session and returns the result summary
// @Summary Submit a test for scoring
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ResultSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tests/{id}/submit [post]
func (h *TestHandler) SubmitTest(c *gin.Context) {
	sessionID := c.Param("id")

	var req SubmitTestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid request payload",
				Details: err.Error(),
			})
			return
		}
		if err := h.validator.ValidateStruct(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Validation failed",
				Details: apperrors.ToValidationErrors(err),
			})
			return
		}
	}

	h.LogRequest(c, "Submitting test", "session_id", sessionID)

	summary, err := h.testService.SubmitTest(c.Request.Context(), sessionID, userIDFromContext(c), req.TimeTaken)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetResults returns the frozen summary of a submitted session
// @Summary Get test results
// @Tags tests
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ResultSummary
// @Failure 404 {object} ErrorResponse
// @Router /tests/{id}/results [get]
func (h *TestHandler) GetResults(c *gin.Context) {
	sessionID := c.Param("id")

	summary, err := h.testService.Results(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrTestNotSubmitted) {
			c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
