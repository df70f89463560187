package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentConfig is a single-row table holding the UPI collection details
// shown to users during manual payment.
type PaymentConfig struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"_id"`
	UPIID        string    `gorm:"not null;default:'admin@upi'" json:"upiId"`
	QRCodeURL    string    `gorm:"default:''" json:"qrCodeUrl"`
	Instructions string    `gorm:"default:'Please pay to the UPI ID above and upload the screenshot.'" json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *PaymentConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
