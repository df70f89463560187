package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post holds the cosmetic growth counters shown by the live dashboard.
// The numbers are simulated client-side; nothing here touches a real platform.
type Post struct {
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

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
