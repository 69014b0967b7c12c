package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClosingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	journal         *journalFixture
	service         portssvc.ClosingSvc
	ctx             context.Context
	scopeID         string
}

func (suite *ClosingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.journal = tradingPeriod()
	suite.ctx = context.Background()
	suite.scopeID = "user-1"
	suite.service = services.NewClosingService(suite.mockAccountRepo, suite.mockJournalRepo,
		services.WithClock(fixedClock),
		services.WithIDGenerator(sequentialIDs()),
	)

	suite.mockAccountRepo.On("ListAccounts", suite.ctx, false).Return(activeChart(), nil).Maybe()
	suite.mockJournalRepo.On("FindJournalEntries", suite.ctx, suite.scopeID, mock.AnythingOfType("domain.LedgerFilter")).
		Return(func(_ context.Context, _ string, filter domain.LedgerFilter) []domain.JournalEntry {
			return suite.journal.matching(filter)
		}, nil).Maybe()
}

func (suite *ClosingServiceTestSuite) TestGenerateClosingEntries_Preview() {
	entries, netIncome, err := suite.service.GenerateClosingEntries(suite.ctx, suite.scopeID, day("2024-01-31"))

	suite.Require().NoError(err)
	suite.True(netIncome.Equal(decimal.NewFromInt(4_500_000)))

	refs := make([]string, len(entries))
	for i, e := range entries {
		refs[i] = e.Reference
		suite.Equal(day("2024-01-31"), e.Date)
	}
	suite.Equal([]string{
		"CLS-REV-20241231-001",
		"CLS-EXP-20241231-002",
		"CLS-EXP-20241231-003",
		"CLS-HPP-20241231-004",
		"CLS-INCOME-20241231-005",
		"CLS-PRIVE-20241231-006",
	}, refs)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceClosingEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClosingServiceTestSuite) TestRunClosing_SavesEntriesAndRows() {
	var savedRows []domain.JournalEntry
	suite.mockJournalRepo.On("ReplaceClosingEntries", suite.ctx, suite.scopeID, mock.AnythingOfType("[]domain.ClosingEntry"), mock.AnythingOfType("[]domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			savedRows = args.Get(3).([]domain.JournalEntry)
			suite.journal.entries = append(suite.journal.entries, savedRows...)
		}).
		Return(6, nil).Once()

	entries, _, result, err := suite.service.RunClosing(suite.ctx, suite.scopeID, day("2024-01-31"))

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal(6, result.Count)
	suite.Len(savedRows, 2*len(entries))
	for _, row := range savedRows {
		suite.Equal(domain.EntryClosing, row.EntryType)
		suite.True(row.Processed)
		suite.Equal(fixedNow, row.CreatedAt)
	}

	reporting := services.NewReportingService(suite.mockAccountRepo, suite.mockJournalRepo)
	pc, err := reporting.PostClosingTrialBalance(suite.ctx, suite.scopeID)
	suite.Require().NoError(err)
	suite.True(pc.IsClean(), "residuals: %v", pc.NominalResiduals)

	capital, ok := pc.TrialBalance.Row("3101")
	suite.Require().True(ok)
	suite.True(capital.Credit.Equal(decimal.NewFromInt(53_500_000)))
}

func (suite *ClosingServiceTestSuite) TestSaveClosingEntries_FailureIsReported() {
	suite.mockJournalRepo.On("ReplaceClosingEntries", suite.ctx, suite.scopeID, mock.Anything, mock.Anything).Return(0, assert.AnError).Once()

	entries, _, err := suite.service.GenerateClosingEntries(suite.ctx, suite.scopeID, day("2024-01-31"))
	suite.Require().NoError(err)

	result := suite.service.SaveClosingEntries(suite.ctx, suite.scopeID, entries)

	suite.False(result.Success)
	suite.Zero(result.Count)
	suite.Contains(result.Message, assert.AnError.Error())
}

func (suite *ClosingServiceTestSuite) TestListClosingEntries_NilBecomesEmpty() {
	suite.mockJournalRepo.On("ListClosingEntries", suite.ctx, suite.scopeID).Return([]domain.ClosingEntry(nil), nil).Once()

	entries, err := suite.service.ListClosingEntries(suite.ctx, suite.scopeID)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func TestClosingService(t *testing.T) {
	suite.Run(t, new(ClosingServiceTestSuite))
}
