package entity

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrOrderProcessed      = errors.New("order already processed")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidFulfilment   = errors.New("invalid fulfilment status")
)
