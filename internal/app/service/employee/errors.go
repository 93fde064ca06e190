package employee

import "errors"

var (
	// ErrNotFound is returned when the employee id does not exist.
	ErrNotFound = errors.New("employee not found")
	// ErrEmailTaken is returned when another employee already owns the email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrCNICTaken is returned when another employee already owns the CNIC.
	ErrCNICTaken = errors.New("cnic already exists")
	// ErrDesignationNotFound is returned for an unknown designation id.
	ErrDesignationNotFound = errors.New("designation not found")
	// ErrAddressNotFound is returned when the address does not exist or
	// belongs to another employee.
	ErrAddressNotFound = errors.New("address not found")
	// ErrWrongPassword is returned when the current-password check fails on
	// a change-password request. No mutation happens.
	ErrWrongPassword = errors.New("current password is incorrect")
)
