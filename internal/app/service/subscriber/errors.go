package subscriber

import "errors"

var (
	// ErrNotFound is returned when the subscriber id does not exist.
	ErrNotFound = errors.New("subscriber not found")
	// ErrEmailTaken is returned when another subscriber already owns the email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrActivePackage is returned when an assignment would overlap an
	// existing non-expired package. No write is performed.
	ErrActivePackage = errors.New("subscriber already has an active package")
	// ErrPackageNotFound is returned when the referenced package id does not exist.
	ErrPackageNotFound = errors.New("package not found")
)
