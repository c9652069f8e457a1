package order_action_post

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

	var req dto.WorkflowActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	changes := make([]entities.ProposedItemChange, len(req.ProposedChanges))
	for i, c := range req.ProposedChanges {
		changes[i] = entities.ProposedItemChange{
			ProductID:    c.ProductID,
			Quantity:     c.Quantity,
			UnitPrice:    c.UnitPrice,
			ChangeReason: c.ChangeReason,
		}
	}

	cmd, err := entities.ParseCommand(entities.ActionType(req.Action), orderID, entities.Command{
		ActorID:          req.ActorID,
		Reason:           req.Reason,
		AccessCode:       req.AccessCode,
		DeliveryPersonID: req.DeliveryPersonID,
		AssignedBy:       req.AssignedBy,
		Feedback:         req.Feedback,
		ProposedChanges:  changes,
	})
	if err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid workflow action", err.Error())
		return
	}

	order, err := h.service.Execute(r.Context(), *cmd)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrInvalidTransition):
			respond.Fail(w, h.log, http.StatusBadRequest, "action not allowed from current status", err.Error())
		case errors.Is(err, orders.ErrOrderNotFound):
			respond.Fail(w, h.log, http.StatusNotFound, "order not found", err.Error())
		case errors.Is(err, orders.ErrBackendRejected):
			respond.Fail(w, h.log, http.StatusUnprocessableEntity, "action rejected by backend", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromOrderPayload(order), "action "+cmd.Action.String()+" applied")
}
