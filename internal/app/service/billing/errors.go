package billing

import "errors"

var (
	// ErrPaymentNotFound is returned for an unknown payment id.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrSubscriberNotFound is returned for an unknown subscriber id.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrPackageNotFound is returned for an unknown package id.
	ErrPackageNotFound = errors.New("package not found")
	// ErrInvalidApproval is returned when the approval value is not yes/no.
	ErrInvalidApproval = errors.New("approval must be yes or no")
)
