package checkout_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"portal/internal/dto"
	"portal/internal/entities"
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
	var req dto.CheckoutValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	items := make([]entities.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entities.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	validation, err := h.service.ValidateCheckout(r.Context(), entities.CheckoutRequest{
		UserID:   req.UserID,
		VendorID: req.VendorID,
		Items:    items,
	})
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrMissingRequiredFields):
			respond.Fail(w, h.log, http.StatusBadRequest, "missing required fields", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromCheckoutValidation(validation), "")
}
