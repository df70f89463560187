package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"boost-market/pkg/logger"
	"boost-market/services/wallet/internal/entity"
	"boost-market/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWalletUseCase is a mock implementation of WalletUseCase
type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) RequestDeposit(userID string, in usecase.RequestDepositInput) (*entity.WalletTransaction, error) {
	args := m.Called(userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WalletTransaction), args.Error(1)
}

func (m *MockWalletUseCase) ListMyTransactions(userID string) ([]*entity.WalletTransaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WalletTransaction), args.Error(1)
}

func (m *MockWalletUseCase) ListPendingDeposits() ([]*entity.WalletTransaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WalletTransaction), args.Error(1)
}

func (m *MockWalletUseCase) ResolveDeposit(txnID string, status entity.TransactionStatus) (*entity.WalletTransaction, error) {
	args := m.Called(txnID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WalletTransaction), args.Error(1)
}

var _ usecase.WalletUseCase = (*MockWalletUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func depositForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestRequestDeposit_Success(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/wallet/deposit", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.RequestDeposit(c)
	})

	mockUseCase.On("RequestDeposit", "user-1", mock.MatchedBy(func(in usecase.RequestDepositInput) bool {
		return in.Amount == 500 && in.UTR == "UTR123"
	})).Return(&entity.WalletTransaction{
		ID:     "txn-1",
		UserID: "user-1",
		Amount: 500,
		Type:   entity.TransactionDeposit,
		Status: entity.TransactionStatusPending,
	}, nil)

	body, contentType := depositForm(t, map[string]string{
		"amount": "500",
		"utr":    "UTR123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallet/deposit", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.WalletTransaction
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, entity.TransactionStatusPending, response.Status)
	mockUseCase.AssertExpectations(t)
}

func TestRequestDeposit_MissingUTR(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/wallet/deposit", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.RequestDeposit(c)
	})

	body, contentType := depositForm(t, map[string]string{
		"amount": "500",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallet/deposit", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "RequestDeposit", mock.Anything, mock.Anything)
}

func TestRequestDeposit_NegativeAmount(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/wallet/deposit", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.RequestDeposit(c)
	})

	body, contentType := depositForm(t, map[string]string{
		"amount": "-50",
		"utr":    "UTR123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/wallet/deposit", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "RequestDeposit", mock.Anything, mock.Anything)
}

func TestGetTransactions(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/wallet/transactions", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetTransactions(c)
	})

	mockUseCase.On("ListMyTransactions", "user-1").Return([]*entity.WalletTransaction{
		{ID: "txn-1", Type: entity.TransactionDeposit},
		{ID: "txn-2", Type: entity.TransactionPurchase},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/wallet/transactions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []entity.WalletTransaction
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
}

func TestGetPendingDeposits(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/wallet/pending", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.GetPendingDeposits(c)
	})

	mockUseCase.On("ListPendingDeposits").Return([]*entity.WalletTransaction{
		{ID: "txn-1", Status: entity.TransactionStatusPending, UserName: "Alice", UserNumber: "9999999999"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/wallet/pending", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []entity.WalletTransaction
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.Equal(t, "Alice", response[0].UserName)
}

func TestResolveDeposit_Approve(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/wallet/deposit/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.ResolveDeposit(c)
	})

	mockUseCase.On("ResolveDeposit", "txn-1", entity.TransactionStatusApproved).Return(&entity.WalletTransaction{
		ID:     "txn-1",
		Status: entity.TransactionStatusApproved,
	}, nil)

	payload, _ := json.Marshal(ResolveDepositRequest{Status: "APPROVED"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/wallet/deposit/txn-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestResolveDeposit_AlreadyProcessed(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/wallet/deposit/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.ResolveDeposit(c)
	})

	mockUseCase.On("ResolveDeposit", "txn-1", entity.TransactionStatusApproved).
		Return(nil, entity.ErrTransactionProcessed)

	payload, _ := json.Marshal(ResolveDepositRequest{Status: "APPROVED"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/wallet/deposit/txn-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Transaction already processed", response["error"])
}

func TestResolveDeposit_NotFound(t *testing.T) {
	mockUseCase := new(MockWalletUseCase)
	handler := NewWalletHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/wallet/deposit/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.ResolveDeposit(c)
	})

	mockUseCase.On("ResolveDeposit", "missing", entity.TransactionStatusRejected).
		Return(nil, entity.ErrTransactionNotFound)

	payload, _ := json.Marshal(ResolveDepositRequest{Status: "REJECTED"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/wallet/deposit/missing", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
