package common

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// IsNotFound returns true if the error is a Google API not found error,
// otherwise returns false
func IsNotFound(err error) bool {
	var gapiErr *googleapi.Error
	if errors.As(err, &gapiErr) {
		return gapiErr.Code == http.StatusNotFound
	}

	return false
}
