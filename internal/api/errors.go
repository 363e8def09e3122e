// File: internal/api/errors.go
package api

import "fmt"

// Error is a non-2xx response from the platform, carrying the msg field of
// the response envelope when the body had one.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Msg, e.Status)
}
