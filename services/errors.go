package services

import (
	"errors"
	"fmt"
)

// DuplicateUserError is returned by signup when the email is already taken.
type DuplicateUserError struct {
	Email string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("an account already exists for %v", e.Email)
}

// InvalidCredentialsError is returned by login when no user matches both
// email and password exactly.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// OperationFailedError wraps unexpected failures from the create, update and
// delete paths, mainly blob-store write errors.
type OperationFailedError struct {
	Op  string
	Err error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("%v failed: %v", e.Op, e.Err)
}

func (e *OperationFailedError) Unwrap() error {
	return e.Err
}

func opFailed(op string, err error) error {
	return &OperationFailedError{Op: op, Err: err}
}

var errNotAuthenticated = errors.New("not authenticated")
