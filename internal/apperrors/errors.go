package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrLockTimeout indicates the workflow lock could not be acquired within the
// wait bound. Retryable by the caller.
var ErrLockTimeout = errors.New("lock acquisition timed out")

// ErrInvalidRole indicates an unsupported signature role was requested. Not
// retryable; caller bug.
var ErrInvalidRole = errors.New("invalid signature role")

// ErrSheetResolution indicates no working worksheet could be resolved for a
// document row.
var ErrSheetResolution = errors.New("worksheet could not be resolved")
