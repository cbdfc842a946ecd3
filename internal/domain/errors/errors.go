package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyCart          = errors.New("empty cart")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidDelivery    = errors.New("invalid delivery details")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidRestaurant  = errors.New("invalid restaurant data")
	ErrInvalidMenuItem    = errors.New("invalid menu item data")
)
