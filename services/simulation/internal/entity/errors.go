package entity

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrProxyNotFound = errors.New("proxy not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidStatus = errors.New("invalid proxy status")
)
