package service

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrRequesterRequired = errors.New("solicitante is required")
	ErrEmptyItems        = errors.New("at least one item is required")
	ErrQuantityInvalid   = errors.New("quantity must be > 0")
	ErrStatusInvalid     = errors.New("invalid status value")

	ErrInvalidItem   = errors.New("invalid item")
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyFile     = errors.New("file has no data rows")
	ErrNoValidItems  = errors.New("no valid items in file")

	ErrEmptyExport   = errors.New("no orders to export")
	ErrNoRecipients  = errors.New("no email recipient configured")
	ErrEmailDispatch = errors.New("email dispatch failed")
)
