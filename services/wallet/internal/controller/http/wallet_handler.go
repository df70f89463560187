package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"boost-market/pkg/logger"
	"boost-market/services/wallet/internal/entity"
	"boost-market/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

type ResolveDepositRequest struct {
	Status string `json:"status" binding:"required"`
}

// RequestDeposit godoc
// @Summary      Request wallet deposit
// @Description  Submit a UPI payment claim with UTR and screenshot for admin review
// @Tags         wallet
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        amount formData number true "Deposit amount"
// @Param        utr formData string true "UPI transaction reference"
// @Param        screenshot formData file false "Payment screenshot"
// @Success      201  {object}  entity.WalletTransaction
// @Failure      400  {object}  map[string]string
// @Router       /wallet/deposit [post]
func (h *WalletHandler) RequestDeposit(c *gin.Context) {
	userID := c.GetString("user_id")

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number"})
		return
	}

	utr := c.PostForm("utr")
	if utr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "utr is required"})
		return
	}

	in := usecase.RequestDepositInput{
		Amount: amount,
		UTR:    utr,
	}

	if fileHeader, err := c.FormFile("screenshot"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read screenshot"})
			return
		}
		defer file.Close()

		in.Screenshot = file
		in.ScreenshotKey = "deposit-" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
		in.ContentType = fileHeader.Header.Get("Content-Type")
	}

	txn, err := h.walletUseCase.RequestDeposit(userID, in)
	if err != nil {
		h.logger.Error("Failed to request deposit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GetTransactions godoc
// @Summary      List own wallet transactions
// @Description  Deposits, purchases and refunds of the caller, newest first
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.WalletTransaction
// @Router       /wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString("user_id")

	txns, err := h.walletUseCase.ListMyTransactions(userID)
	if err != nil {
		h.logger.Error("Failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// GetPendingDeposits godoc
// @Summary      List pending deposits
// @Description  Admin review queue of unsettled deposit claims
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.WalletTransaction
// @Router       /wallet/pending [get]
func (h *WalletHandler) GetPendingDeposits(c *gin.Context) {
	txns, err := h.walletUseCase.ListPendingDeposits()
	if err != nil {
		h.logger.Error("Failed to list pending deposits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// ResolveDeposit godoc
// @Summary      Approve or reject a deposit
// @Description  Admin-only; approval credits the wallet exactly once
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Param        request body ResolveDepositRequest true "New status"
// @Success      200  {object}  entity.WalletTransaction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /wallet/deposit/{id} [put]
func (h *WalletHandler) ResolveDeposit(c *gin.Context) {
	txnID := c.Param("id")

	var req ResolveDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.walletUseCase.ResolveDeposit(txnID, entity.TransactionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, entity.ErrTransactionProcessed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction already processed"})
		case errors.Is(err, entity.ErrNotDeposit):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction is not a deposit"})
		case errors.Is(err, entity.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction status"})
		default:
			h.logger.Error("Failed to resolve deposit: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}
