package entity

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Number         string          `json:"number"`
	Password       string          `json:"-"`
	Role           Role            `json:"role"`
	WalletBalance  float64         `json:"walletBalance"`
	SocialAccounts []SocialAccount `json:"socialAccounts"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SocialAccount is a user-declared handle on a boosted platform. Purely
// informational; nothing verifies the link.
type SocialAccount struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Link   string `json:"link"`
}
