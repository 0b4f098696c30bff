package backend

import "fmt"

// StatusError reports a non-success HTTP status from the backend
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP error! status: %d", e.Endpoint, e.Code)
}

// APIError reports a success HTTP status whose payload carried an explicit
// error field. Treated identically to a transport failure by callers.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
