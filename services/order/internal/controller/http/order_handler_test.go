package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"boost-market/pkg/logger"
	"boost-market/services/order/internal/entity"
	"boost-market/services/order/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderUseCase is a mock implementation of OrderUseCase
type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(userID string, in usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(userID, role string) ([]*entity.Order, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListMyOrders(userID string) ([]*entity.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(orderID, userID, role string) (*entity.Order, error) {
	args := m.Called(orderID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUseCase) UpdateStatus(orderID string, status entity.OrderStatus, rejectionReason string) (*entity.Order, error) {
	args := m.Called(orderID, status, rejectionReason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUseCase) UpdateFulfilment(orderID string, status entity.FulfilmentStatus) (*entity.Order, error) {
	args := m.Called(orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

var _ usecase.OrderUseCase = (*MockOrderUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func orderForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateOrder_WalletSuccess(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateOrder(c)
	})

	mockUseCase.On("CreateOrder", "user-123", mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
		return in.PlanID == "plan-1" && in.Amount == 300 && in.PaymentMethod == "WALLET"
	})).Return(&entity.Order{
		ID:     "order-1",
		UserID: "user-123",
		PlanID: "plan-1",
		Amount: 300,
		Status: entity.OrderStatusApproved,
		UTR:    entity.WalletPaymentUTR,
	}, nil)

	body, contentType := orderForm(t, map[string]string{
		"planId":        "plan-1",
		"amount":        "300",
		"paymentMethod": "WALLET",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Order
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, entity.OrderStatusApproved, response.Status)
	assert.Equal(t, entity.WalletPaymentUTR, response.UTR)

	mockUseCase.AssertExpectations(t)
}

func TestCreateOrder_InsufficientBalance(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateOrder(c)
	})

	mockUseCase.On("CreateOrder", "user-123", mock.AnythingOfType("usecase.CreateOrderInput")).
		Return(nil, entity.ErrInsufficientBalance)

	body, contentType := orderForm(t, map[string]string{
		"planId":        "plan-1",
		"amount":        "9999",
		"paymentMethod": "WALLET",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Insufficient wallet balance", response["error"])
}

func TestCreateOrder_MissingPlanID(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateOrder(c)
	})

	body, contentType := orderForm(t, map[string]string{
		"amount": "300",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_BadAmount(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/orders", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateOrder(c)
	})

	body, contentType := orderForm(t, map[string]string{
		"planId": "plan-1",
		"amount": "three hundred",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", contentType)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestGetOrders_User(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/orders", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("user_role", "USER")
		handler.GetOrders(c)
	})

	mockUseCase.On("ListOrders", "user-123", "USER").Return([]*entity.Order{
		{ID: "order-1", UserID: "user-123"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []entity.Order
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	mockUseCase.AssertExpectations(t)
}

func TestGetOrder_NotFound(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/orders/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set("user_role", "USER")
		handler.GetOrder(c)
	})

	mockUseCase.On("GetOrder", "missing", "user-123", "USER").Return(nil, entity.ErrOrderNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrder_Forbidden(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/orders/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder-1")
		c.Set("user_role", "USER")
		handler.GetOrder(c)
	})

	mockUseCase.On("GetOrder", "order-1", "intruder-1", "USER").Return(nil, entity.ErrNotAuthorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/orders/order-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOrderStatus_Approve(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/orders/:id/status", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.UpdateOrderStatus(c)
	})

	mockUseCase.On("UpdateStatus", "order-1", entity.OrderStatusApproved, "").Return(&entity.Order{
		ID:     "order-1",
		Status: entity.OrderStatusApproved,
	}, nil)

	payload, _ := json.Marshal(UpdateStatusRequest{Status: "APPROVED"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/orders/order-1/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateOrderStatus_AlreadyProcessed(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/orders/:id/status", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.UpdateOrderStatus(c)
	})

	mockUseCase.On("UpdateStatus", "order-1", entity.OrderStatusApproved, "").
		Return(nil, entity.ErrOrderProcessed)

	payload, _ := json.Marshal(UpdateStatusRequest{Status: "APPROVED"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/orders/order-1/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Order already processed", response["error"])
}

func TestUpdateOrder_Fulfilment(t *testing.T) {
	mockUseCase := new(MockOrderUseCase)
	handler := NewOrderHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/orders/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("user_role", "ADMIN")
		handler.UpdateOrder(c)
	})

	mockUseCase.On("UpdateFulfilment", "order-1", entity.FulfilmentCompleted).Return(&entity.Order{
		ID:               "order-1",
		Status:           entity.OrderStatusApproved,
		FulfilmentStatus: entity.FulfilmentCompleted,
	}, nil)

	payload, _ := json.Marshal(UpdateFulfilmentRequest{FulfilmentStatus: "Completed"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/orders/order-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.Order
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, entity.FulfilmentCompleted, response.FulfilmentStatus)
	assert.Equal(t, entity.OrderStatusApproved, response.Status)
}
