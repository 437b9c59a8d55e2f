package routes

import (
	"errors"
	"net/http"

	"github.com/feedbook/feedbook-be/services"
	"github.com/feedbook/feedbook-be/util"
)

// buildServiceHTTPErr maps a service error onto an HTTP status.
func buildServiceHTTPErr(err error) *util.HTTPError {
	var dup *services.DuplicateUserError
	if errors.As(err, &dup) {
		return &util.HTTPError{
			Status:  http.StatusConflict,
			Message: dup.Error(),
		}
	}
	var creds *services.InvalidCredentialsError
	if errors.As(err, &creds) {
		return &util.HTTPError{
			Status:  http.StatusUnauthorized,
			Message: creds.Error(),
		}
	}
	return &util.StoreHTTPErr
}
