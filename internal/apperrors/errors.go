package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found, or that
// it exists but sits outside the caller's ownership chain. The two cases are
// deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks or violated
// a creation-time policy (bad interval, limit reached, wrong company).
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacking the role, permission
// or visibility required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a uniqueness violation or a blocked deletion,
// e.g. deleting a role that still has users assigned.
var ErrConflict = errors.New("conflict")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
// It is an unauthorized condition with a more specific message for clients.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
