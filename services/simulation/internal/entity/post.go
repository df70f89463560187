package entity

import "time"

// Post carries the cosmetic growth counters shown on the live dashboard.
// The numbers are simulated; nothing here touches a real platform.
type Post struct {
	ID                 string    `json:"_id"`
	UserID             string    `json:"userId"`
	URL                string    `json:"url"`
	Caption            string    `json:"caption"`
	SimulatedViews     int64     `json:"simulatedViews"`
	SimulatedLikes     int64     `json:"simulatedLikes"`
	SimulatedFollowers int64     `json:"simulatedFollowers"`
	EngagementRate     float64   `json:"engagementRate"`
	ProxiesUsed        int       `json:"proxiesUsed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProxyStatus string

const (
	ProxyStatusActive   ProxyStatus = "Active"
	ProxyStatusRotating ProxyStatus = "Rotating"
	ProxyStatusIdle     ProxyStatus = "Idle"
)

func (s ProxyStatus) Valid() bool {
	switch s {
	case ProxyStatusActive, ProxyStatusRotating, ProxyStatusIdle:
		return true
	}
	return false
}

// Proxy rows are display inventory for the admin dashboard.
type Proxy struct {
	ID        string      `json:"_id"`
	IP        string      `json:"ip"`
	Port      string      `json:"port"`
	Country   string      `json:"country"`
	Status    ProxyStatus `json:"status"`
	Username  string      `json:"username,omitempty"`
	Password  string      `json:"password,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
