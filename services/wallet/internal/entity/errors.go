package entity

import "errors"

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrTransactionProcessed = errors.New("transaction already processed")
	ErrInvalidStatus        = errors.New("invalid transaction status")
	ErrNotDeposit           = errors.New("transaction is not a deposit")
)
