package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletTransactionModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"_id"`
	UserID         string    `gorm:"type:uuid;not null;index" json:"userId"`
	Amount         float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type           string    `gorm:"type:varchar(10);not null" json:"type"`
	Status         string    `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	UTR            string    `gorm:"column:utr" json:"utr"`
	ScreenshotPath string    `json:"screenshotPath"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

func (t *WalletTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type UserModel struct {
	ID            string  `gorm:"type:uuid;primary_key" json:"_id"`
	Name          string  `json:"name"`
	Number        string  `json:"number"`
	WalletBalance float64 `gorm:"type:numeric(12,2);default:0" json:"walletBalance"`
}

func (UserModel) TableName() string {
	return "users"
}
