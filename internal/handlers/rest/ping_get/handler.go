package ping_get

import (
	"net/http"

	"portal/internal/handlers/rest/respond"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, h.log, map[string]string{"message": "pong"}, "")
}
