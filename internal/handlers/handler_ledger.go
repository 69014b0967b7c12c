package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the general journal and general ledger views.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/journal", h.getJournal)
	rg.GET("/ledger", h.getLedger)
	rg.GET("/ledger/:code", h.getLedger)
}

// bindLedgerQuery binds and parses the shared ledger query, writing 400 on failure.
func bindLedgerQuery(c *gin.Context) (dto.LedgerQuery, bool) {
	var query dto.LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return query, false
	}
	if code := c.Param("code"); code != "" {
		query.AccountCode = code
	}
	return query, true
}

// getJournal godoc
// @Summary General journal
// @Description Journal entries of the caller's scope ordered by date, then by posting order.
// @Tags ledger
// @Produce json
// @Param account query string false "Account code"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param include_adjusting query bool false "Include adjusting entries" default(true)
// @Param include_closing query bool false "Include closing entries"
// @Success 200 {array} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load journal"
// @Security BearerAuth
// @Router /journal [get]
func (h *ledgerHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	query, ok := bindLedgerQuery(c)
	if !ok {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, err := h.ledgerService.GetJournal(c.Request.Context(), scopeID, filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entries))
}

// getLedger godoc
// @Summary General ledger
// @Description Journal entries with a running balance per account. Entries pointing at unknown
// @Description accounts are flagged and do not move any balance.
// @Tags ledger
// @Produce json
// @Param code path string false "Account code"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param include_adjusting query bool false "Include adjusting entries" default(true)
// @Param include_closing query bool false "Include closing entries"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /ledger/{code} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	query, ok := bindLedgerQuery(c)
	if !ok {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	result, err := h.ledgerService.GetLedgerEntries(c.Request.Context(), scopeID, filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build ledger")
		return
	}

	if len(result.DanglingEntries) > 0 {
		logger.Warn("Ledger contains entries for unknown accounts", slog.Int("count", len(result.DanglingEntries)))
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(filter.AccountCode, result))
}
