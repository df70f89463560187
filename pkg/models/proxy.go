package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProxyStatus string

const (
	ProxyStatusActive   ProxyStatus = "Active"
	ProxyStatusRotating ProxyStatus = "Rotating"
	ProxyStatusIdle     ProxyStatus = "Idle"
)

type Proxy struct {
	ID        string      `gorm:"type:uuid;primary_key" json:"_id"`
	IP        string      `gorm:"not null" json:"ip"`
	Port      string      `gorm:"not null" json:"port"`
	Country   string      `gorm:"not null" json:"country"`
	Status    ProxyStatus `gorm:"type:varchar(10);default:'Active'" json:"status"`
	Username  string      `gorm:"default:''" json:"username"`
	Password  string      `gorm:"default:''" json:"password"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (p *Proxy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
