package utils

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrPhoneAlreadyExists   = errors.New("phone already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
	ErrProductNotFound      = errors.New("product not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrDeliveryNotFound     = errors.New("delivery not found")
	ErrUserInfoNotFound     = errors.New("delivery address not set")
	ErrNotOwner             = errors.New("subscription does not belong to this account")
	ErrSubscriptionInactive = errors.New("subscription is not active")
	ErrNothingToPause       = errors.New("no pending deliveries in the requested window")
	ErrSundayNotAllowed     = errors.New("sundays are not delivery days")
	ErrDuplicateLeaveDate   = errors.New("a cancellation already exists for this date")
	ErrStaleSubscription    = errors.New("subscription was modified concurrently, retry")
	ErrPaymentProofRequired = errors.New("payment proof is required for PhonePe payments")
	ErrVerificationPending  = errors.New("an address verification is already pending")
	ErrVerificationNotFound = errors.New("verification record not found")
	RecordNotFound          = errors.New("record not found")
)

// PauseLimitError carries the remaining allowance when a pause request would
// push a subscription past the lifetime cap.
type PauseLimitError struct {
	Requested int
	Remaining int
}

func (e *PauseLimitError) Error() string {
	return fmt.Sprintf("maximum %d pause days allowed per subscription, requested %d, remaining %d",
		MaxPauseDays, e.Requested, e.Remaining)
}
