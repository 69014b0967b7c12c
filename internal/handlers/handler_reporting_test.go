package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func balancedTrialBalance(kind domain.TrialBalanceKind) *domain.TrialBalance {
	tb := &domain.TrialBalance{Kind: kind}
	tb.Add(*kas(), decimal.NewFromInt(100), decimal.Zero)
	tb.Add(domain.Account{Code: "3101", Name: "Modal Disetor", Type: domain.Equity, NormalBalance: domain.NormalCredit}, decimal.Zero, decimal.NewFromInt(100))
	return tb
}

func (suite *HandlerTestSuite) TestTrialBalance_DefaultsToUnadjusted() {
	suite.mockReporting.On("TrialBalance", mock.Anything, suite.userID, domain.TrialBalanceUnadjusted, (*time.Time)(nil)).
		Return(balancedTrialBalance(domain.TrialBalanceUnadjusted), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.TrialBalanceUnadjusted, resp.Kind)
	suite.True(resp.Totals.IsBalanced)
	suite.Len(resp.ByType, 2)
}

func (suite *HandlerTestSuite) TestTrialBalance_AdjustedAsOf() {
	suite.mockReporting.On("TrialBalance", mock.Anything, suite.userID, domain.TrialBalanceAdjusted,
		mock.MatchedBy(func(d *time.Time) bool { return d != nil && d.Format(domain.DateLayout) == "2024-01-31" }),
	).Return(balancedTrialBalance(domain.TrialBalanceAdjusted), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?kind=adjusted&as_of=2024-01-31", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestTrialBalance_UnknownKind() {
	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?kind=projected", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "TrialBalance")
}

func (suite *HandlerTestSuite) TestFinancialStatements() {
	st := &domain.FinancialStatements{
		TrialBalance:    *balancedTrialBalance(domain.TrialBalanceAdjusted),
		IncomeStatement: domain.IncomeStatement{NetIncome: decimal.NewFromInt(4_500_000)},
		BalanceSheet: domain.BalanceSheet{
			NetAssets:                 decimal.NewFromInt(10),
			TotalLiabilitiesAndEquity: decimal.NewFromInt(10),
		},
	}
	suite.mockReporting.On("FinancialStatements", mock.Anything, suite.userID, (*time.Time)(nil)).Return(st, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/financial-statements", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialStatementsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IncomeStatement.NetIncome.Equal(decimal.NewFromInt(4_500_000)))
	suite.True(resp.BalanceSheet.IsBalanced)
}

func (suite *HandlerTestSuite) TestFinancialStatements_StrictModeDangling() {
	suite.mockReporting.On("FinancialStatements", mock.Anything, suite.userID, (*time.Time)(nil)).
		Return(nil, apperrors.ErrDanglingAccount).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/financial-statements", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostClosingTrialBalance() {
	suite.mockReporting.On("PostClosingTrialBalance", mock.Anything, suite.userID).Return(&domain.PostClosingTrialBalance{
		TrialBalance: *balancedTrialBalance(domain.TrialBalancePostClosing),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/post-closing-trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostClosingTrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsClean)
}

func (suite *HandlerTestSuite) TestJournalAndLedger() {
	entries := []domain.JournalEntry{{
		ID:          1,
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AccountCode: "1101",
		Debit:       decimal.NewFromInt(100),
		Credit:      decimal.Zero,
		EntryType:   domain.EntryRegular,
	}}
	suite.mockLedger.On("GetJournal", mock.Anything, suite.userID, domain.LedgerFilter{IncludeAdjusting: true}).Return(entries, nil).Once()
	suite.mockLedger.On("GetLedgerEntries", mock.Anything, suite.userID,
		mock.MatchedBy(func(f domain.LedgerFilter) bool { return f.AccountCode == "1101" }),
	).Return(&domain.LedgerResult{
		Lines:   []domain.LedgerLine{{Entry: entries[0], AccountName: "Kas", RunningBalance: decimal.NewFromInt(100)}},
		Balance: decimal.NewFromInt(100),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal", nil)
	suite.Equal(http.StatusOK, w.Code)
	var journal []dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &journal))
	suite.Require().Len(journal, 1)
	suite.Equal("2024-01-01", journal[0].Date)

	w = suite.do(http.MethodGet, "/api/v1/ledger/1101", nil)
	suite.Equal(http.StatusOK, w.Code)
	var ledger dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &ledger))
	suite.Equal("1101", ledger.AccountCode)
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *HandlerTestSuite) TestLedger_UnknownAccount() {
	suite.mockLedger.On("GetLedgerEntries", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("account 9999")).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger?account=9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestClosingPreview() {
	closingDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockClosing.On("GenerateClosingEntries", mock.Anything, suite.userID, closingDate).
		Return([]domain.ClosingEntry{{Reference: "CLS-REV-20241231-001", Date: closingDate, Kind: domain.ClosingRevenue}}, decimal.NewFromInt(4_500_000), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/closing-entries/preview?closing_date=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClosingPreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("CLS-REV-20241231-001", resp.Entries[0].Reference)
	suite.mockClosing.AssertNotCalled(suite.T(), "SaveClosingEntries")
}

func (suite *HandlerTestSuite) TestRunClosing() {
	closingDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	entries := []domain.ClosingEntry{{Reference: "CLS-REV-20241231-001", Date: closingDate}}
	suite.mockClosing.On("RunClosing", mock.Anything, suite.userID, closingDate).
		Return(entries, decimal.NewFromInt(1), domain.ClosingResult{Success: true, Message: "1 closing entries saved", Count: 1}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/closing-entries", dto.ClosingRequest{ClosingDate: "2024-12-31"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClosingRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Result.Success)
	suite.Equal(1, resp.Result.Count)
}

func (suite *HandlerTestSuite) TestRunClosing_SaveFailure() {
	suite.mockClosing.On("RunClosing", mock.Anything, suite.userID, mock.AnythingOfType("time.Time")).
		Return([]domain.ClosingEntry{}, decimal.Zero, domain.ClosingResult{Success: false, Message: "failed to save closing entries: boom"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/closing-entries", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "boom")
}

func (suite *HandlerTestSuite) TestListClosingEntries_Error() {
	suite.mockClosing.On("ListClosingEntries", mock.Anything, suite.userID).Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/closing-entries", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "db down")
}
