package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type closingHandler struct {
	closingService portssvc.ClosingSvc
}

func newClosingHandler(cs portssvc.ClosingSvc) *closingHandler {
	return &closingHandler{closingService: cs}
}

// registerClosingRoutes registers the period-end closing routes.
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvc) {
	h := newClosingHandler(closingService)

	closing := rg.Group("/closing-entries")
	{
		closing.GET("", h.listClosingEntries)
		closing.GET("/preview", h.previewClosing)
		closing.POST("", h.runClosing)
	}
}

// closingDate returns the requested closing date, or today in UTC.
func closingDate(req dto.ClosingRequest) (time.Time, error) {
	d, err := dto.ParseOptionalDate(req.ClosingDate)
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return *d, nil
}

// previewClosing godoc
// @Summary Preview closing entries
// @Description Generates the closing entries from the adjusted trial balance without saving them.
// @Tags closing
// @Produce json
// @Param closing_date query string false "Posting date of the closing entries (YYYY-MM-DD)" default(today)
// @Success 200 {object} dto.ClosingPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate closing entries"
// @Security BearerAuth
// @Router /closing-entries/preview [get]
func (h *closingHandler) previewClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.ClosingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	date, err := closingDate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, netIncome, err := h.closingService.GenerateClosingEntries(c.Request.Context(), scopeID, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate closing entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingPreviewResponse(entries, netIncome))
}

// runClosing godoc
// @Summary Run the period-end close
// @Description Generates closing entries and replaces any previously saved set for the scope.
// @Tags closing
// @Accept json
// @Produce json
// @Param request body dto.ClosingRequest false "Closing date"
// @Success 201 {object} dto.ClosingRunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.ClosingRunResponse "Closing entries could not be saved"
// @Security BearerAuth
// @Router /closing-entries [post]
func (h *closingHandler) runClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.ClosingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}
	date, err := closingDate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("scope_id", scopeID), slog.String("closing_date", date.Format(domain.DateLayout)))

	entries, netIncome, result, err := h.closingService.RunClosing(c.Request.Context(), scopeID, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate closing entries")
		return
	}

	resp := dto.ClosingRunResponse{
		ClosingPreviewResponse: dto.ToClosingPreviewResponse(entries, netIncome),
		Result:                 result,
	}
	if !result.Success {
		logger.Error("Closing entries could not be saved", slog.String("message", result.Message))
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	logger.Info("Closing completed", slog.Int("count", result.Count))
	c.JSON(http.StatusCreated, resp)
}

// listClosingEntries godoc
// @Summary List saved closing entries
// @Tags closing
// @Produce json
// @Success 200 {array} dto.ClosingEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list closing entries"
// @Security BearerAuth
// @Router /closing-entries [get]
func (h *closingHandler) listClosingEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.closingService.ListClosingEntries(c.Request.Context(), scopeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list closing entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClosingEntryResponse(entries))
}
