package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderModel struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"_id"`
	UserID           string    `gorm:"type:uuid;not null;index" json:"userId"`
	PlanID           string    `gorm:"type:uuid;not null;index" json:"planId"`
	Status           string    `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	Amount           float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	UTR              string    `gorm:"column:utr" json:"utr"`
	ScreenshotPath   string    `json:"screenshotPath"`
	RejectionReason  string    `json:"rejectionReason"`
	Video            string    `json:"video"`
	FulfilmentStatus string    `gorm:"type:varchar(15);default:'Pending'" json:"compeletedStatus"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

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

type PlanModel struct {
	ID       string  `gorm:"type:uuid;primary_key" json:"_id"`
	Name     string  `json:"name"`
	Platform string  `json:"platform"`
	Price    float64 `gorm:"type:numeric(12,2)" json:"price"`
	Type     string  `json:"type"`
}

func (PlanModel) TableName() string {
	return "plans"
}
