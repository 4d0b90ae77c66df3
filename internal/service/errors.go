package service

import "errors"

// Error taxonomy. All of these are recoverable at the handler boundary;
// handlers map them onto HTTP statuses. Invalid input is rejected and
// reported, never coerced.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUExists         = errors.New("SKU already exists")
	ErrNameRequired      = errors.New("name is required")
	ErrNegativeValue     = errors.New("quantity and price must be non-negative")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrPermissionDenied  = errors.New("admin privileges required")
	ErrImportAborted     = errors.New("import aborted: no conflict policy chosen")
	ErrInvalidThreshold  = errors.New("threshold must be non-negative")
)
