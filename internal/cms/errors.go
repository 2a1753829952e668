package cms

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// StatusError is returned when the API answers with a status other than
// the one the call expects.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsConflict reports whether err is a 409 answer from the API.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// StatusCode extracts the HTTP status from err, or 0 when err did not come
// from an API response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
