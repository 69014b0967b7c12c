package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Date:              "2024-01-10",
		Description:       "Penjualan tunai",
		DebitAccountCode:  "1101",
		CreditAccountCode: "4101",
		Amount:            decimal.NewFromInt(15_000_000),
	}
	txnID := uuid.NewString()
	suite.mockTransaction.On("RecordTransaction", mock.Anything, suite.userID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.DebitAccountCode == "1101" && r.Amount.Equal(req.Amount)
		}),
	).Return(&domain.Transaction{
		TransactionID:     txnID,
		Date:              time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Description:       req.Description,
		DebitAccountCode:  "1101",
		CreditAccountCode: "4101",
		Amount:            req.Amount,
		Reference:         "TRX-ABCDEF12",
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txnID, resp.TransactionID)
	suite.Equal("2024-01-10", resp.Date)
	suite.Equal("TRX-ABCDEF12", resp.Reference)
}

func (suite *HandlerTestSuite) TestCreateTransaction_SameAccountsRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		Date:              "2024-01-10",
		Description:       "x",
		DebitAccountCode:  "1101",
		CreditAccountCode: "1101",
		Amount:            decimal.NewFromInt(1),
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *HandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockTransaction.On("RecordTransaction", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: credit account 4999 not found", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{
		Date:              "2024-01-10",
		Description:       "x",
		DebitAccountCode:  "1101",
		CreditAccountCode: "4999",
		Amount:            decimal.NewFromInt(1),
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "4999")
}

func (suite *HandlerTestSuite) TestListTransactions_PassesToken() {
	token := "abc"
	suite.mockTransaction.On("ListTransactions", mock.Anything, suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == token
		}),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=5&nextToken=abc", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	id := uuid.NewString()
	suite.mockTransaction.On("DeleteTransaction", mock.Anything, suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockTransaction.On("DeleteTransaction", mock.Anything, suite.userID, "missing").
		Return(apperrors.NewNotFoundError("transaction missing")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAdjustingEntry() {
	suite.mockTransaction.On("RecordAdjustingEntry", mock.Anything, suite.userID,
		mock.MatchedBy(func(r dto.CreateAdjustingEntryRequest) bool { return r.Description == "" }),
	).Return(&domain.AdjustingEntry{
		AdjustingEntryID:  uuid.NewString(),
		Date:              time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Reference:         "ADJ-20241231-173005-0000",
		Description:       "Penyesuaian: Beban Penyusutan dan Akumulasi Penyusutan",
		DebitAccountCode:  "5301",
		CreditAccountCode: "1311",
		Amount:            decimal.NewFromInt(500_000),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/adjusting-entries", dto.CreateAdjustingEntryRequest{
		Date:              "2024-01-31",
		DebitAccountCode:  "5301",
		CreditAccountCode: "1311",
		Amount:            decimal.NewFromInt(500_000),
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AdjustingEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ADJ-20241231-173005-0000", resp.Reference)
}

func (suite *HandlerTestSuite) TestListAndDeleteAdjustingEntries() {
	id := uuid.NewString()
	suite.mockTransaction.On("ListAdjustingEntries", mock.Anything, suite.userID).
		Return([]domain.AdjustingEntry{{AdjustingEntryID: id}}, nil).Once()
	suite.mockTransaction.On("DeleteAdjustingEntry", mock.Anything, suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/adjusting-entries", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AdjustingEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)

	w = suite.do(http.MethodDelete, "/api/v1/adjusting-entries/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}
