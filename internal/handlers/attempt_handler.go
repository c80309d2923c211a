package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyforge/scoring-service/internal/repositories"
	"github.com/studyforge/scoring-service/internal/services"
	"github.com/studyforge/scoring-service/internal/utils"
)

type AttemptHandler struct {
	BaseHandler
	testService   services.TestService
	exportService services.ExportService
}

func NewAttemptHandler(testService services.TestService, exportService services.ExportService, logger utils.Logger) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler:   NewBaseHandler(logger),
		testService:   testService,
		exportService: exportService,
	}
}

func attemptFilters(c *gin.Context) repositories.AttemptFilters {
	filters := repositories.AttemptFilters{
		UserID: userIDFromContext(c),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filters.Offset = offset
	}
	return filters
}

// ListAttempts returns the persisted attempt history
// @Summary List attempt history
// @Tags attempts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /attempts [get]
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	filters := attemptFilters(c)

	records, total, err := h.testService.AttemptHistory(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"total": total,
	})
}

// ExportAttempts downloads the attempt history as a spreadsheet
// @Summary Export attempt history
// @Tags attempts
// @Produce application/octet-stream
// @Param format query string false "xlsx or csv" default(xlsx)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /attempts/export [get]
func (h *AttemptHandler) ExportAttempts(c *gin.Context) {
	filters := attemptFilters(c)
	format := c.DefaultQuery("format", "xlsx")

	h.LogRequest(c, "Exporting attempts", "format", format)

	switch format {
	case "xlsx":
		data, err := h.exportService.ExportAttemptsToExcel(c.Request.Context(), filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="attempts.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := h.exportService.ExportAttemptsToCSV(c.Request.Context(), filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="attempts.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "format must be xlsx or csv"})
	}
}
