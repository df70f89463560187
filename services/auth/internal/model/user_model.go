package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID             string               `gorm:"type:uuid;primary_key" json:"_id"`
	Name           string               `gorm:"not null" json:"name"`
	Number         string               `gorm:"uniqueIndex;not null" json:"number"`
	Password       string               `gorm:"not null" json:"-"`
	Role           string               `gorm:"type:varchar(10);default:'USER'" json:"role"`
	WalletBalance  float64              `gorm:"type:numeric(12,2);default:0" json:"walletBalance"`
	SocialAccounts []SocialAccountModel `gorm:"foreignKey:UserID" json:"socialAccounts"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type SocialAccountModel struct {
	ID     string `gorm:"type:uuid;primary_key" json:"_id"`
	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	Name   string `gorm:"not null" json:"name"`
	Link   string `gorm:"not null" json:"link"`
}

func (SocialAccountModel) TableName() string {
	return "social_accounts"
}

func (s *SocialAccountModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
