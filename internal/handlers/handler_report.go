package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ReportHandler handles health report generation requests.
type ReportHandler struct {
	reportService portssvc.ReportSvcFacade
	validate      *validator.Validate
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs portssvc.ReportSvcFacade) *ReportHandler {
	return &ReportHandler{
		reportService: rs,
		validate:      validator.New(),
	}
}

// GetTips godoc
// @Summary Generate a health report
// @Description Builds a prompt from the submitted metrics, calls the external completion API and returns the parsed report.
// @Tags report
// @Accept json
// @Produce json
// @Param metrics body dto.HealthMetricsRequest true "Today's health metrics"
// @Success 200 {object} dto.GetTipsResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 500 {object} apperrors.AppError
// @Security BearerAuth
// @Router /get-tips [post]
func (h *ReportHandler) GetTips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HealthMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid health metrics: " + err.Error()})
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req.ToHealthMetrics())
	if err != nil {
		var formatErr *apperrors.UpstreamFormatError
		switch {
		case errors.Is(err, apperrors.ErrLLMNotConfigured):
			logger.Error("Report generation attempted without an API key")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gemini API key not configured"})
		case errors.As(err, &formatErr):
			logger.Error("Upstream returned unparsable content",
				slog.String("error", formatErr.ParseErr.Error()),
				slog.String("raw", formatErr.Raw),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Invalid JSON response from AI"})
		default:
			logger.Error("Report generation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GetTipsResponse{
		Success:      true,
		HealthReport: report,
	})
}
