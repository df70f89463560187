package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlanType string

const (
	PlanTypeLikes     PlanType = "LIKES"
	PlanTypeViews     PlanType = "VIEWS"
	PlanTypeFollowers PlanType = "FOLLOWERS"
	PlanTypeBundle    PlanType = "BUNDLE"
)

type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformTelegram  Platform = "TELEGRAM"
)

type Plan struct {
	ID             string         `gorm:"type:uuid;primary_key" json:"_id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"not null" json:"description"`
	Price          float64        `gorm:"type:numeric(12,2);not null" json:"price"`
	Features       pq.StringArray `gorm:"type:text[]" json:"features"`
	Type           PlanType       `gorm:"type:varchar(20);default:'LIKES'" json:"type"`
	Platform       Platform       `gorm:"type:varchar(20);default:'INSTAGRAM';not null" json:"platform"`
	ViewsCount     int            `gorm:"default:0" json:"viewsCount"`
	LikesCount     int            `gorm:"default:0" json:"likesCount"`
	FollowersCount int            `gorm:"default:0" json:"followersCount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
