package entity

import "time"

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

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformYouTube, PlatformTelegram:
		return true
	}
	return false
}

type Plan struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Features       []string  `json:"features"`
	Type           PlanType  `json:"type"`
	Platform       Platform  `json:"platform"`
	ViewsCount     int       `json:"viewsCount"`
	LikesCount     int       `json:"likesCount"`
	FollowersCount int       `json:"followersCount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentConfig is the UPI collection detail set shown during manual payment.
// Exactly one row exists; updates overwrite it in place.
type PaymentConfig struct {
	ID           string    `json:"_id"`
	UPIID        string    `json:"upiId"`
	QRCodeURL    string    `json:"qrCodeUrl"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
