package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyforge/scoring-service/internal/services"
	"github.com/studyforge/scoring-service/internal/utils"
)

const defaultLeaderboardSize = 5

type LeaderboardHandler struct {
	BaseHandler
	testService services.TestService
}

func NewLeaderboardHandler(testService services.TestService, logger utils.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		BaseHandler: NewBaseHandler(logger),
		testService: testService,
	}
}

// GetLeaderboard returns the top-n ranked attempts
// @Summary Get the leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(5)
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries := h.testService.TopEntries(c.Request.Context(), limit)
	c.JSON(http.StatusOK, SuccessResponse{Data: entries})
}
