package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"_id"`
	Name          string    `gorm:"not null" json:"name"`
	Number        string    `gorm:"uniqueIndex" json:"number"`
	Password      string    `gorm:"not null" json:"-"`
	Role          UserRole  `gorm:"type:varchar(10);default:'USER'" json:"role"`
	WalletBalance float64   `gorm:"type:numeric(12,2);default:0" json:"walletBalance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
