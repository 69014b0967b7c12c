package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/financial-statements", h.getFinancialStatements)
		reportingGroup.GET("/post-closing-trial-balance", h.getPostClosingTrialBalance)
	}
}

// reportQuery holds the query parameters shared by the report endpoints.
type reportQuery struct {
	Kind string `form:"kind,default=unadjusted" binding:"oneof=unadjusted adjusted post-closing"`
	AsOf string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Unadjusted uses regular entries, adjusted adds adjusting entries and post-closing
// @Description adds closing entries. Accounts with a zero balance are listed when active.
// @Tags reports
// @Produce json
// @Param kind query string false "unadjusted, adjusted or post-closing" default(unadjusted)
// @Param as_of query string false "Report date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid trial balance query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := dto.ParseOptionalDate(q.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("kind", q.Kind))
	logger.Info("Received request to generate trial balance report")

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), userID, domain.TrialBalanceKind(q.Kind), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getFinancialStatements godoc
// @Summary Generate the income statement and balance sheet
// @Description Both statements come from the adjusted trial balance.
// @Tags reports
// @Produce json
// @Param as_of query string false "Report date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.FinancialStatementsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/financial-statements [get]
func (h *reportingHandler) getFinancialStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	asOf, err := dto.ParseOptionalDate(c.Query("as_of"))
	if err != nil {
		logger.Warn("Invalid as_of date format", slog.String("as_of", c.Query("as_of")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	statements, err := h.reportingService.FinancialStatements(c.Request.Context(), userID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate financial statements")
		return
	}

	logger.Info("Financial statements generated",
		slog.String("net_income", statements.IncomeStatement.NetIncome.String()),
		slog.Bool("balanced", statements.BalanceSheet.IsBalanced()))
	c.JSON(http.StatusOK, dto.ToFinancialStatementsResponse(statements))
}

// getPostClosingTrialBalance godoc
// @Summary Generate the post-closing trial balance
// @Description Real accounts after every entry type, plus any nominal account left unclosed.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.PostClosingTrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/post-closing-trial-balance [get]
func (h *reportingHandler) getPostClosingTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pc, err := h.reportingService.PostClosingTrialBalance(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate post-closing trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostClosingTrialBalanceResponse(pc))
}
