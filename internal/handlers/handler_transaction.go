package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles regular transactions and adjusting entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers transaction and adjusting entry routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
	}

	adjusting := rg.Group("/adjusting-entries")
	{
		adjusting.POST("", h.createAdjustingEntry)
		adjusting.GET("", h.listAdjustingEntries)
		adjusting.DELETE("/:adjusting_entry_id", h.deleteAdjustingEntry)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Posts a balanced pair of journal entries: one debit, one credit of the same amount.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), scopeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("reference", txn.Reference))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), scopeID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("transaction_id")))

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), scopeID, c.Param("transaction_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction and both of its journal entries.
// @Tags transactions
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("transaction_id")))

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), scopeID, c.Param("transaction_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}

// createAdjustingEntry godoc
// @Summary Record an adjusting entry
// @Description Period-end adjustment. Included in adjusted trial balances and statements only.
// @Tags adjusting-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateAdjustingEntryRequest true "Adjusting entry details"
// @Success 201 {object} dto.AdjustingEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record adjusting entry"
// @Security BearerAuth
// @Router /adjusting-entries [post]
func (h *transactionHandler) createAdjustingEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdjustingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdjustingEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.transactionService.RecordAdjustingEntry(c.Request.Context(), scopeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record adjusting entry")
		return
	}

	logger.Info("Adjusting entry recorded", slog.String("adjusting_entry_id", entry.AdjustingEntryID), slog.String("reference", entry.Reference))
	c.JSON(http.StatusCreated, dto.ToAdjustingEntryResponse(entry))
}

// listAdjustingEntries godoc
// @Summary List adjusting entries
// @Tags adjusting-entries
// @Produce json
// @Success 200 {array} dto.AdjustingEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list adjusting entries"
// @Security BearerAuth
// @Router /adjusting-entries [get]
func (h *transactionHandler) listAdjustingEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.transactionService.ListAdjustingEntries(c.Request.Context(), scopeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list adjusting entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdjustingEntryResponse(entries))
}

// deleteAdjustingEntry godoc
// @Summary Delete an adjusting entry
// @Tags adjusting-entries
// @Param adjusting_entry_id path string true "Adjusting entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjusting entry not found"
// @Failure 500 {object} map[string]string "Failed to delete adjusting entry"
// @Security BearerAuth
// @Router /adjusting-entries/{adjusting_entry_id} [delete]
func (h *transactionHandler) deleteAdjustingEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjusting_entry_id", c.Param("adjusting_entry_id")))

	scopeID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteAdjustingEntry(c.Request.Context(), scopeID, c.Param("adjusting_entry_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete adjusting entry")
		return
	}

	logger.Info("Adjusting entry deleted")
	c.Status(http.StatusNoContent)
}
