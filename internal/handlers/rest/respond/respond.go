// Package respond writes the uniform response envelope. Every proxied
// route answers through it so callers always see the same shape and the
// admin UI never caches a lifecycle read.
package respond

import (
	"encoding/json"
	"net/http"

	"portal/internal/dto"
	"portal/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, env dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func OK(w http.ResponseWriter, log errorLogger, data interface{}, message string) {
	JSON(w, log, http.StatusOK, dto.OK(data, message))
}

func Created(w http.ResponseWriter, log errorLogger, data interface{}, message string) {
	JSON(w, log, http.StatusCreated, dto.OK(data, message))
}

func Fail(w http.ResponseWriter, log errorLogger, status int, message string, errs ...string) {
	JSON(w, log, status, dto.Fail(message, errs...))
}
