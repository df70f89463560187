package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"_id"`
	UserID             string    `gorm:"type:uuid;not null;index" json:"userId"`
	URL                string    `gorm:"not null" json:"url"`
	Caption            string    `gorm:"default:'Untitled Post'" json:"caption"`
	SimulatedViews     int64     `gorm:"default:0" json:"simulatedViews"`
	SimulatedLikes     int64     `gorm:"default:0" json:"simulatedLikes"`
	SimulatedFollowers int64     `gorm:"default:0" json:"simulatedFollowers"`
	EngagementRate     float64   `gorm:"type:numeric(5,2);default:4.5" json:"engagementRate"`
	ProxiesUsed        int       `gorm:"default:0" json:"proxiesUsed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type ProxyModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"_id"`
	IP        string    `gorm:"not null" json:"ip"`
	Port      string    `gorm:"not null" json:"port"`
	Country   string    `gorm:"not null" json:"country"`
	Status    string    `gorm:"type:varchar(10);default:'Active'" json:"status"`
	Username  string    `gorm:"default:''" json:"username"`
	Password  string    `gorm:"default:''" json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProxyModel) TableName() string {
	return "proxies"
}

func (p *ProxyModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
