package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"boost-market/pkg/logger"
	"boost-market/services/order/internal/entity"
	"boost-market/services/order/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       *logger.Logger
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

type UpdateFulfilmentRequest struct {
	FulfilmentStatus string `json:"compeletedStatus" binding:"required"`
}

// CreateOrder godoc
// @Summary      Create order
// @Description  Purchase a boost plan via wallet balance or manual UPI proof
// @Tags         orders
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        planId formData string true "Plan ID"
// @Param        amount formData number true "Amount"
// @Param        paymentMethod formData string false "WALLET or ONLINE"
// @Param        utr formData string false "UPI transaction reference"
// @Param        video formData string false "Target video/post URL"
// @Param        screenshot formData file false "Payment screenshot"
// @Success      201  {object}  entity.Order
// @Failure      400  {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	planID := c.PostForm("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planId is required"})
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number"})
		return
	}

	in := usecase.CreateOrderInput{
		PlanID:        planID,
		Amount:        amount,
		PaymentMethod: c.PostForm("paymentMethod"),
		UTR:           c.PostForm("utr"),
		Video:         c.PostForm("video"),
	}

	if fileHeader, err := c.FormFile("screenshot"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read screenshot"})
			return
		}
		defer file.Close()

		in.Screenshot = file
		in.ScreenshotKey = "proof-" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
		in.ContentType = fileHeader.Header.Get("Content-Type")
	}

	order, err := h.orderUseCase.CreateOrder(userID, in)
	if err != nil {
		if errors.Is(err, entity.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance"})
			return
		}
		h.logger.Error("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders godoc
// @Summary      List orders
// @Description  Admin sees all non-rejected orders, users see their own
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Order
// @Router       /orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")

	orders, err := h.orderUseCase.ListOrders(userID, role)
	if err != nil {
		h.logger.Error("Failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetMyOrders godoc
// @Summary      List own orders
// @Description  All of the caller's orders regardless of status
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Order
// @Router       /orders/my2 [get]
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := h.orderUseCase.ListMyOrders(userID)
	if err != nil {
		h.logger.Error("Failed to list user orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary      Get single order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Success      200  {object}  entity.Order
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")
	orderID := c.Param("id")

	order, err := h.orderUseCase.GetOrder(orderID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, entity.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("Failed to get order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary      Approve, reject or cancel an order
// @Description  Admin-only settlement transition; terminal orders are immutable
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Order
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.UpdateStatus(orderID, entity.OrderStatus(req.Status), req.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, entity.ErrOrderProcessed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order already processed"})
		case errors.Is(err, entity.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		default:
			h.logger.Error("Failed to update order status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrder godoc
// @Summary      Update fulfilment status
// @Description  Tracks boost delivery, independent of payment settlement
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Param        request body UpdateFulfilmentRequest true "Fulfilment status"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateFulfilmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.UpdateFulfilment(orderID, entity.FulfilmentStatus(req.FulfilmentStatus))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, entity.ErrInvalidFulfilment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fulfilment status"})
		default:
			h.logger.Error("Failed to update fulfilment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
