package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotStudent         = errors.New("not a student account")
	ErrAlreadyApplied     = errors.New("already applied for this job")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrBadDeadline        = errors.New("lastDate is not a valid date")
	ErrNotVerified        = errors.New("verification required before applying")
)
