package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further payment-status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected || s == OrderStatusCancelled
}

// CanTransitionTo enforces the settlement state machine: only PENDING orders
// may move, and only into a terminal state. A wallet-paid order is created
// APPROVED and can never come back.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}
	return next == OrderStatusApproved || next == OrderStatusRejected || next == OrderStatusCancelled
}

type FulfilmentStatus string

// Spellings are kept exactly as existing clients send and render them.
const (
	FulfilmentPending    FulfilmentStatus = "Pending"
	FulfilmentInProgress FulfilmentStatus = "In Progress"
	FulfilmentCompleted  FulfilmentStatus = "Completed"
	FulfilmentCancelled  FulfilmentStatus = "Cenceled"
)

func (s FulfilmentStatus) Valid() bool {
	switch s {
	case FulfilmentPending, FulfilmentInProgress, FulfilmentCompleted, FulfilmentCancelled:
		return true
	}
	return false
}

// WalletPaymentUTR is stored in place of a UTR on wallet-funded orders.
const WalletPaymentUTR = "WALLET_PAYMENT"

const PaymentMethodWallet = "WALLET"

type Order struct {
	ID               string           `json:"_id"`
	UserID           string           `json:"userId"`
	PlanID           string           `json:"planId"`
	Status           OrderStatus      `json:"status"`
	Amount           float64          `json:"amount"`
	UTR              string           `json:"utr,omitempty"`
	ScreenshotPath   string           `json:"screenshotPath,omitempty"`
	RejectionReason  string           `json:"rejectionReason,omitempty"`
	Video            string           `json:"video,omitempty"`
	FulfilmentStatus FulfilmentStatus `json:"compeletedStatus"`
	UserName         string           `json:"userName,omitempty"`
	UserNumber       string           `json:"userNumber,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Plan is the read-only slice of the catalog the order flow needs for
// composing the purchase description.
type Plan struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
	Type     string  `json:"type"`
}
