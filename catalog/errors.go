package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxErrorBodySize is the number of body bytes a StatusError keeps.
const MaxErrorBodySize = 64 * 1024

// StatusError is returned when the catalog API answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	// Body is the start of the response body, at most MaxErrorBodySize bytes
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 200))
}

// IsNotFound reports whether err is a StatusError with status 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
