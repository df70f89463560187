package http

import (
	"errors"
	"net/http"

	"boost-market/pkg/logger"
	"boost-market/services/simulation/internal/entity"
	"boost-market/services/simulation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	simUseCase usecase.SimulationUseCase
	logger     *logger.Logger
}

func NewSimulationHandler(simUseCase usecase.SimulationUseCase, logger *logger.Logger) *SimulationHandler {
	return &SimulationHandler{
		simUseCase: simUseCase,
		logger:     logger,
	}
}

type CreatePostRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}

type UpdateCountersRequest struct {
	SimulatedViews     int64   `json:"simulatedViews"`
	SimulatedLikes     int64   `json:"simulatedLikes"`
	SimulatedFollowers int64   `json:"simulatedFollowers"`
	EngagementRate     float64 `json:"engagementRate"`
	ProxiesUsed        int     `json:"proxiesUsed"`
}

type ProxyRequest struct {
	IP       string `json:"ip" binding:"required"`
	Port     string `json:"port" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Status   string `json:"status"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePost godoc
// @Summary      Track a post
// @Description  Register a post URL for simulated growth display
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *SimulationHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.simUseCase.CreatePost(userID, req.URL, req.Caption)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetMyPosts godoc
// @Summary      List own tracked posts
// @Tags         simulation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Post
// @Router       /posts [get]
func (h *SimulationHandler) GetMyPosts(c *gin.Context) {
	userID := c.GetString("user_id")

	posts, err := h.simUseCase.ListMyPosts(userID)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get single post
// @Tags         simulation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *SimulationHandler) GetPost(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")

	post, err := h.simUseCase.GetPost(c.Param("id"), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("Failed to get post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdateCounters godoc
// @Summary      Update simulated counters
// @Description  Dashboard push of the cosmetic growth numbers
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body UpdateCountersRequest true "Counter values"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *SimulationHandler) UpdateCounters(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")

	var req UpdateCountersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.simUseCase.UpdateCounters(c.Param("id"), userID, role, usecase.UpdateCountersInput{
		SimulatedViews:     req.SimulatedViews,
		SimulatedLikes:     req.SimulatedLikes,
		SimulatedFollowers: req.SimulatedFollowers,
		EngagementRate:     req.EngagementRate,
		ProxiesUsed:        req.ProxiesUsed,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("Failed to update counters: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Stop tracking a post
// @Tags         simulation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *SimulationHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("user_role")

	if err := h.simUseCase.DeletePost(c.Param("id"), userID, role); err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		default:
			h.logger.Error("Failed to delete post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// GetProxies godoc
// @Summary      List proxies
// @Description  Admin-only proxy pool inventory
// @Tags         simulation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Proxy
// @Router       /proxies [get]
func (h *SimulationHandler) GetProxies(c *gin.Context) {
	proxies, err := h.simUseCase.ListProxies()
	if err != nil {
		h.logger.Error("Failed to list proxies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, proxies)
}

// CreateProxy godoc
// @Summary      Add proxy
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ProxyRequest true "Proxy data"
// @Success      201  {object}  entity.Proxy
// @Failure      400  {object}  map[string]string
// @Router       /proxies [post]
func (h *SimulationHandler) CreateProxy(c *gin.Context) {
	var req ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proxy, err := h.simUseCase.CreateProxy(&entity.Proxy{
		IP:       req.IP,
		Port:     req.Port,
		Country:  req.Country,
		Status:   entity.ProxyStatus(req.Status),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proxy status"})
			return
		}
		h.logger.Error("Failed to create proxy: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, proxy)
}

// UpdateProxy godoc
// @Summary      Update proxy
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Proxy ID"
// @Param        request body ProxyRequest true "Proxy data"
// @Success      200  {object}  entity.Proxy
// @Failure      404  {object}  map[string]string
// @Router       /proxies/{id} [put]
func (h *SimulationHandler) UpdateProxy(c *gin.Context) {
	var req ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proxy, err := h.simUseCase.UpdateProxy(&entity.Proxy{
		ID:       c.Param("id"),
		IP:       req.IP,
		Port:     req.Port,
		Country:  req.Country,
		Status:   entity.ProxyStatus(req.Status),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProxyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Proxy not found"})
		case errors.Is(err, entity.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proxy status"})
		default:
			h.logger.Error("Failed to update proxy: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, proxy)
}

// DeleteProxy godoc
// @Summary      Remove proxy
// @Tags         simulation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Proxy ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /proxies/{id} [delete]
func (h *SimulationHandler) DeleteProxy(c *gin.Context) {
	if err := h.simUseCase.DeleteProxy(c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrProxyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proxy not found"})
			return
		}
		h.logger.Error("Failed to delete proxy: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proxy deleted"})
}
