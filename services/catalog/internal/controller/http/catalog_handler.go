package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"boost-market/pkg/logger"
	"boost-market/services/catalog/internal/entity"
	"boost-market/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

type PlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	Features       []string `json:"features"`
	Type           string   `json:"type" binding:"required"`
	Platform       string   `json:"platform" binding:"required"`
	ViewsCount     int      `json:"viewsCount"`
	LikesCount     int      `json:"likesCount"`
	FollowersCount int      `json:"followersCount"`
}

// GetPlans godoc
// @Summary      List boost plans
// @Description  Public catalog, optionally filtered by platform
// @Tags         catalog
// @Produce      json
// @Param        platform query string false "Platform filter"
// @Success      200  {array}  entity.Plan
// @Router       /plans [get]
func (h *CatalogHandler) GetPlans(c *gin.Context) {
	platform := c.Query("platform")

	plans, err := h.catalogUseCase.ListPlans(c.Request.Context(), platform)
	if err != nil {
		h.logger.Error("Failed to list plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary      Get single plan
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {object}  entity.Plan
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [get]
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	plan, err := h.catalogUseCase.GetPlan(c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary      Create plan
// @Description  Admin-only catalog entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlanRequest true "Plan data"
// @Success      201  {object}  entity.Plan
// @Failure      400  {object}  map[string]string
// @Router       /plans [post]
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := &entity.Plan{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Features:       req.Features,
		Type:           entity.PlanType(req.Type),
		Platform:       entity.Platform(req.Platform),
		ViewsCount:     req.ViewsCount,
		LikesCount:     req.LikesCount,
		FollowersCount: req.FollowersCount,
	}

	created, err := h.catalogUseCase.CreatePlan(plan)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
			return
		}
		h.logger.Error("Failed to create plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdatePlan godoc
// @Summary      Update plan
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan ID"
// @Param        request body PlanRequest true "Plan data"
// @Success      200  {object}  entity.Plan
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [put]
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := &entity.Plan{
		ID:             c.Param("id"),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Features:       req.Features,
		Type:           entity.PlanType(req.Type),
		Platform:       entity.Platform(req.Platform),
		ViewsCount:     req.ViewsCount,
		LikesCount:     req.LikesCount,
		FollowersCount: req.FollowersCount,
	}

	updated, err := h.catalogUseCase.UpdatePlan(plan)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, entity.ErrInvalidPlatform):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		default:
			h.logger.Error("Failed to update plan: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePlan godoc
// @Summary      Delete plan
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [delete]
func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	if err := h.catalogUseCase.DeletePlan(c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		h.logger.Error("Failed to delete plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

// GetPaymentConfig godoc
// @Summary      Get payment config
// @Description  UPI ID, QR code and payment instructions shown at checkout
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  entity.PaymentConfig
// @Router       /config/payment [get]
func (h *CatalogHandler) GetPaymentConfig(c *gin.Context) {
	config, err := h.catalogUseCase.GetPaymentConfig()
	if err != nil {
		h.logger.Error("Failed to get payment config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpdatePaymentConfig godoc
// @Summary      Update payment config
// @Description  Admin-only; accepts new UPI ID, instructions and QR code image
// @Tags         catalog
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        upiId formData string false "UPI ID"
// @Param        instructions formData string false "Payment instructions"
// @Param        qrCode formData file false "QR code image"
// @Success      200  {object}  entity.PaymentConfig
// @Router       /config/payment [put]
func (h *CatalogHandler) UpdatePaymentConfig(c *gin.Context) {
	upiID := c.PostForm("upiId")
	instructions := c.PostForm("instructions")

	var (
		qrCode      io.Reader
		qrCodeKey   string
		contentType string
	)

	if fileHeader, err := c.FormFile("qrCode"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read QR code"})
			return
		}
		defer file.Close()

		qrCode = file
		qrCodeKey = "qr-" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
		contentType = fileHeader.Header.Get("Content-Type")
	}

	config, err := h.catalogUseCase.UpdatePaymentConfig(upiID, instructions, qrCode, qrCodeKey, contentType)
	if err != nil {
		h.logger.Error("Failed to update payment config: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, config)
}
