package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypePurchase TransactionType = "PURCHASE"
	TransactionTypeRefund   TransactionType = "REFUND"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

type WalletTransaction struct {
	ID             string            `gorm:"type:uuid;primary_key" json:"_id"`
	UserID         string            `gorm:"type:uuid;not null;index" json:"userId"`
	Amount         float64           `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type           TransactionType   `gorm:"type:varchar(10);not null" json:"type"`
	Status         TransactionStatus `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	UTR            string            `json:"utr,omitempty"`
	ScreenshotPath string            `json:"screenshotPath,omitempty"`
	Description    string            `json:"description,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (t *WalletTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
