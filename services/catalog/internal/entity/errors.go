package entity

import "errors"

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidPlatform = errors.New("invalid platform")
)
