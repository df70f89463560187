package entity

import "time"

type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionRefund   TransactionType = "REFUND"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a deposit has already been settled. Only PENDING
// deposits may be approved or rejected; the credit happens exactly once.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusApproved || s == TransactionStatusRejected
}

type WalletTransaction struct {
	ID             string            `json:"_id"`
	UserID         string            `json:"userId"`
	Amount         float64           `json:"amount"`
	Type           TransactionType   `json:"type"`
	Status         TransactionStatus `json:"status"`
	UTR            string            `json:"utr,omitempty"`
	ScreenshotPath string            `json:"screenshotPath,omitempty"`
	Description    string            `json:"description,omitempty"`
	UserName       string            `json:"userName,omitempty"`
	UserNumber     string            `json:"userNumber,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
