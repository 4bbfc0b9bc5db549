package gymapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports an HTTP response with status >= 400.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api %s %s returned status %d: %s", e.Method, e.Path, e.Code, e.Body)
	}
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
