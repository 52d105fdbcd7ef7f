package http

// ErrorResponse is the error envelope returned by all endpoints. Details
// carries the top-level upstream message only, never provider internals.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
