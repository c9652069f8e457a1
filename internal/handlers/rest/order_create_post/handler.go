package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.service.CreateOrder(r.Context(), entities.OrderCreate{
		UserID:          req.UserID,
		VendorID:        req.VendorID,
		LocationID:      req.LocationID,
		LockerID:        req.LockerID,
		DeliveryTime:    req.DeliveryTime,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrMissingRequiredFields):
			respond.Fail(w, h.log, http.StatusBadRequest, "missing required fields", err.Error())
		case errors.Is(err, orders.ErrBackendRejected):
			respond.Fail(w, h.log, http.StatusUnprocessableEntity, "order rejected by backend", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.Created(w, h.log, dto.FromOrderPayload(order), "order created")
}
