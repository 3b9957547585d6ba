package common

import (
	"github.com/google/uuid"
)

// NewRequestID generates a correlation id for an incoming request
// Format: req_<uuid>
func NewRequestID() string {
	return "req_" + uuid.New().String()
}
