package order_actions_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portal/internal/dto"
	"portal/internal/entities"
	"portal/internal/gateway/backend/orders"
	"portal/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	actor := entities.ActorType(r.URL.Query().Get("actor"))

	status, actions, err := h.service.AvailableActions(r.Context(), orderID, actor)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			respond.Fail(w, h.log, http.StatusNotFound, "order not found", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromActions(orderID, status, actions), "")
}
