package admin_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portal/internal/dto"
	"portal/internal/entities"
	"portal/internal/gateway/backend/orders"
	"portal/internal/handlers/rest/respond"
	"portal/internal/service/workflow"
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

	var req dto.StatusOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.service.SetStatus(r.Context(), orderID, req.AdminID, entities.OrderStatusType(req.NewStatus), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrMissingRequiredFields),
			errors.Is(err, workflow.ErrInvalidStatus),
			errors.Is(err, workflow.ErrInvalidTransition):
			respond.Fail(w, h.log, http.StatusBadRequest, "status override refused", err.Error())
		case errors.Is(err, orders.ErrOrderNotFound):
			respond.Fail(w, h.log, http.StatusNotFound, "order not found", err.Error())
		case errors.Is(err, orders.ErrBackendRejected):
			respond.Fail(w, h.log, http.StatusUnprocessableEntity, "status override rejected by backend", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromOrderPayload(order), "order status overridden")
}
