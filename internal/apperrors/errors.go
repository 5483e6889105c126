package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrecondition indicates that the stored state rejects an otherwise
// well-formed request, e.g. an allocation larger than the outstanding debt.
var ErrPrecondition = errors.New("precondition violation")

// ErrConflictExhausted indicates that a transaction kept colliding with
// concurrent writers and gave up after its retry budget. The whole user
// action may be retried.
var ErrConflictExhausted = errors.New("transaction conflict retries exhausted")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")
