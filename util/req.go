package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var (
	StoreHTTPErr = HTTPError{
		Message: "storage error",
		Status:  http.StatusInternalServerError,
	}
	NotLoggedInHTTPErr = HTTPError{
		Message: "not logged in",
		Status:  http.StatusUnauthorized,
	}
	NotAuthorHTTPErr = HTTPError{
		Message: "only the author can do that",
		Status:  http.StatusForbidden,
	}
	PostNotFoundHTTPErr = HTTPError{
		Message: "post not found",
		Status:  http.StatusNotFound,
	}
)

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"success": false,
		"message": err.Message,
	})
}
