package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/handlers"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       string
	userID          string
	mockAccounts    *MockAccountService
	mockLedger      *MockLedgerService
	mockReporting   *MockReportingService
	mockTransaction *MockTransactionService
	mockClosing     *MockClosingService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockAccounts = new(MockAccountService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockReporting = new(MockReportingService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockClosing = new(MockClosingService)

	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret}, &portssvc.ServiceContainer{
		Account:     suite.mockAccounts,
		Ledger:      suite.mockLedger,
		Reporting:   suite.mockReporting,
		Transaction: suite.mockTransaction,
		Closing:     suite.mockClosing,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
	suite.mockTransaction.AssertExpectations(suite.T())
	suite.mockClosing.AssertExpectations(suite.T())
}

// do serves an authenticated request. body is JSON-encoded when non-nil.
func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	token, err := signTestToken(suite.jwtSecret, suite.userID)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func kas() *domain.Account {
	return &domain.Account{
		Code:          "1101",
		Name:          "Kas",
		Type:          domain.Asset,
		Category:      domain.CategoryCashAndBank,
		NormalBalance: domain.NormalDebit,
		IsActive:      true,
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthNeedsNoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestMissingTokenIsRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccounts.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Code:          "1101",
		Name:          "Kas",
		Type:          domain.Asset,
		NormalBalance: domain.NormalDebit,
	}
	suite.mockAccounts.On("CreateAccount", mock.Anything, req, suite.userID).Return(kas(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1101", resp.Code)
	suite.True(resp.IsActive)
}

func (suite *HandlerTestSuite) TestCreateAccount_Duplicate() {
	req := dto.CreateAccountRequest{Code: "1101", Name: "Kas", Type: domain.Asset, NormalBalance: domain.NormalDebit}
	suite.mockAccounts.On("CreateAccount", mock.Anything, req, suite.userID).
		Return(nil, fmt.Errorf("%w: account with code 1101 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_BadBody() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]string{"code": "1101", "type": "Aset", "normalBalance": "Sideways"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccounts.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *HandlerTestSuite) TestListAccounts_ActiveOnly() {
	suite.mockAccounts.On("ListAccounts", mock.Anything, true).Return([]domain.Account{*kas()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?active_only=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 1)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccounts.On("GetAccount", mock.Anything, "9999").Return(nil, apperrors.NewNotFoundError("account 9999")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateAccount() {
	name := "Kas Besar"
	req := dto.UpdateAccountRequest{Name: &name}
	updated := kas()
	updated.Name = name
	suite.mockAccounts.On("UpdateAccount", mock.Anything, "1101", req, suite.userID).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/accounts/1101", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(name, resp.Name)
}

func (suite *HandlerTestSuite) TestToggleAccountActive() {
	toggled := kas()
	toggled.IsActive = false
	suite.mockAccounts.On("ToggleAccountActive", mock.Anything, "1101", suite.userID).Return(toggled, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1101/toggle-active", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
}

func (suite *HandlerTestSuite) TestInitializeDefaultAccounts_Conflict() {
	suite.mockAccounts.On("InitializeDefaultAccounts", mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: chart of accounts is not empty", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/initialize-defaults", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	suite.mockAccounts.On("GetAccount", mock.Anything, "1101").Return(kas(), nil).Once()
	suite.mockLedger.On("GetAccountBalance", mock.Anything, suite.userID, "1101",
		mock.MatchedBy(func(f domain.LedgerFilter) bool {
			return f.IncludeAdjusting && f.EndDate != nil && f.EndDate.Format(domain.DateLayout) == "2024-01-31"
		}),
	).Return(decimal.NewFromInt(54_000_000), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1101/balance?include_adjusting=true&end_date=2024-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Kas", resp.Name)
	suite.Equal("2024-01-31", resp.AsOf)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(54_000_000)))
}

func (suite *HandlerTestSuite) TestGetAccountBalance_IncludesAdjustingByDefault() {
	suite.mockAccounts.On("GetAccount", mock.Anything, "1311").Return(&domain.Account{
		Code:          "1311",
		Name:          "Akumulasi Penyusutan",
		Type:          domain.ContraAsset,
		NormalBalance: domain.NormalCredit,
		IsActive:      true,
	}, nil).Once()
	suite.mockLedger.On("GetAccountBalance", mock.Anything, suite.userID, "1311",
		domain.LedgerFilter{IncludeAdjusting: true},
	).Return(decimal.NewFromInt(500), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1311/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(500)))
}

func (suite *HandlerTestSuite) TestGetAccountBalance_ExcludeAdjusting() {
	suite.mockAccounts.On("GetAccount", mock.Anything, "1311").Return(kas(), nil).Once()
	suite.mockLedger.On("GetAccountBalance", mock.Anything, suite.userID, "1311",
		mock.MatchedBy(func(f domain.LedgerFilter) bool { return !f.IncludeAdjusting && !f.IncludeClosing }),
	).Return(decimal.Zero, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1311/balance?include_adjusting=false", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccountBalance_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/1101/balance?end_date=31-01-2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
