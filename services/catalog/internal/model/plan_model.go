package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlanModel struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"_id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"not null" json:"description"`
	Price          float64        `gorm:"type:numeric(12,2);not null" json:"price"`
	Features       pq.StringArray `gorm:"type:text[]" json:"features"`
	Type           string         `gorm:"type:varchar(20);default:'LIKES'" json:"type"`
	Platform       string         `gorm:"type:varchar(20);default:'INSTAGRAM';not null" json:"platform"`
	ViewsCount     int            `gorm:"default:0" json:"viewsCount"`
	LikesCount     int            `gorm:"default:0" json:"likesCount"`
	FollowersCount int            `gorm:"default:0" json:"followersCount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (PlanModel) TableName() string {
	return "plans"
}

func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PaymentConfigModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"_id"`
	UPIID        string    `gorm:"column:upi_id;not null;default:'admin@upi'" json:"upiId"`
	QRCodeURL    string    `gorm:"column:qr_code_url;default:''" json:"qrCodeUrl"`
	Instructions string    `gorm:"default:'Please pay to the UPI ID above and upload the screenshot.'" json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PaymentConfigModel) TableName() string {
	return "payment_configs"
}

func (p *PaymentConfigModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
