package dto

import (
	"time"
)

// APIResponse is the envelope returned by every endpoint: Data on success,
// Error on failure.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}
