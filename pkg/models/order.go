package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type FulfilmentStatus string

// Spellings kept as the clients expect them on the wire.
const (
	FulfilmentPending    FulfilmentStatus = "Pending"
	FulfilmentInProgress FulfilmentStatus = "In Progress"
	FulfilmentCompleted  FulfilmentStatus = "Completed"
	FulfilmentCancelled  FulfilmentStatus = "Cenceled"
)

// WalletPaymentUTR marks an order as wallet-funded instead of UPI-verified.
const WalletPaymentUTR = "WALLET_PAYMENT"

type Order struct {
	ID               string           `gorm:"type:uuid;primary_key" json:"_id"`
	UserID           string           `gorm:"type:uuid;not null;index" json:"userId"`
	PlanID           string           `gorm:"type:uuid;not null;index" json:"planId"`
	Status           OrderStatus      `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	Amount           float64          `gorm:"type:numeric(12,2);not null" json:"amount"`
	UTR              string           `json:"utr,omitempty"`
	ScreenshotPath   string           `json:"screenshotPath,omitempty"`
	RejectionReason  string           `json:"rejectionReason,omitempty"`
	Video            string           `json:"video,omitempty"`
	FulfilmentStatus FulfilmentStatus `gorm:"type:varchar(15);default:'Pending'" json:"compeletedStatus"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
