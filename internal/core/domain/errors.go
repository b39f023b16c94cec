package domain

import "errors"

var (
	ErrOutOfStock          = errors.New("out of stock")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingSignupFields = errors.New("name, email and password are required")
	ErrInvalidTransition   = errors.New("action not allowed in current view")
)
