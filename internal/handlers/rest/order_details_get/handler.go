package order_details_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portal/internal/dto"
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
	if orderID == "" {
		respond.Fail(w, h.log, http.StatusBadRequest, "order id is required")
		return
	}

	detail, err := h.service.GetOrderDetails(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			respond.Fail(w, h.log, http.StatusNotFound, "order not found", err.Error())
		case errors.Is(err, orders.ErrBackendRejected):
			respond.Fail(w, h.log, http.StatusUnprocessableEntity, "request rejected by backend", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromOrderDetail(detail), "")
}
