package model

import "errors"

// Common errors used across the application
var (
	// Token errors
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenTooShort  = errors.New("token length is below the minimum")
	ErrInvalidPurpose = errors.New("token purpose must not be empty")
)
