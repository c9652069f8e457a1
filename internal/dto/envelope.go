package dto

import (
	"encoding/json"
	"time"
)

// Envelope is the uniform response wrapper used by every endpoint, both
// when proxying backend replies and when this service answers on its own.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	Errors    []string    `json:"errors"`
	Timestamp string      `json:"timestamp"`
}

// BackendEnvelope is the read-side twin of Envelope: data stays raw until
// the caller knows which payload shape to decode it into.
type BackendEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Errors    []string        `json:"errors"`
	Timestamp string          `json:"timestamp"`
}

func OK(data interface{}, message string) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Errors:    []string{},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func Fail(message string, errs ...string) Envelope {
	if errs == nil {
		errs = []string{}
	}
	return Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
