package services

import "errors"

// Service-level sentinel errors.  Handlers map these to HTTP statuses with
// errors.Is.
var (
	// ErrInvalidRequest marks input rejected before any store access.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCheckoutFailed wraps any store-level failure inside the checkout
	// transaction. The transaction has been rolled back; the caller may
	// safely retry the whole checkout.
	ErrCheckoutFailed = errors.New("checkout failed")
	// ErrEmailTaken marks a registration attempt with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidStatus marks an order status outside the known set.
	ErrInvalidStatus = errors.New("invalid order status")
)
