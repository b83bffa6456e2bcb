package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates a job status change from a terminal state or
// to a state that is not reachable from the current one.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvariantViolation indicates a value that would break a financial
// invariant (negative balance, item totals not summing to the job total, etc.).
var ErrInvariantViolation = errors.New("invariant violation")

// ErrConflict indicates a concurrent modification was detected while updating a job.
var ErrConflict = errors.New("conflicting concurrent update")
