package workflow

import (
	"context"
	"fmt"

	"portal/internal/entities"
	"portal/pkg/logger"
)

// Service drives the order lifecycle. It never changes status locally:
// every mutation is one backend call, gated by a re-fetch of the order's
// current status so obviously illegal actions fail fast. The backend
// remains the final arbiter for races that slip past the gate.
type Service struct {
	gateway     OrderGateway
	invalidator Invalidator
	logger      logger.Logger
}

func New(gateway OrderGateway, invalidator Invalidator, logger logger.Logger) *Service {
	return &Service{
		gateway:     gateway,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *Service) ValidateCheckout(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutValidation, error) {
	if req.UserID == 0 || req.VendorID == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: user id, vendor id and items", ErrMissingRequiredFields)
	}

	validation, err := s.gateway.ValidateCheckout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("validate checkout: %w", err)
	}

	return validation, nil
}

func (s *Service) CreateOrder(ctx context.Context, req entities.OrderCreate) (*entities.Order, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.invalidator.InvalidateLists()

	return order, nil
}

// Execute runs one workflow command. The order is re-fetched first; the
// command must be legal from the status the backend reports right now,
// not from whatever the caller last saw.
func (s *Service) Execute(ctx context.Context, cmd entities.Command) (*entities.Order, error) {
	current, err := s.gateway.GetOrderByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("refetch order %s: %w", cmd.OrderID, err)
	}

	if !cmd.AllowedFrom(current.Status) {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, cmd.Action, current.Status)
	}

	order, err := s.gateway.ExecuteTransition(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("execute %s on %s: %w", cmd.Action, cmd.OrderID, err)
	}

	s.invalidator.InvalidateOrder(cmd.OrderID)
	s.invalidator.InvalidateLists()

	return order, nil
}

// AvailableActions re-fetches the order and lists the actions legal from
// its current status, optionally narrowed to one actor role.
func (s *Service) AvailableActions(ctx context.Context, orderID string, actor entities.ActorType) (entities.OrderStatusType, []entities.ActionType, error) {
	order, err := s.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", nil, fmt.Errorf("refetch order %s: %w", orderID, err)
	}

	return order.Status, entities.AvailableActions(order.Status, actor), nil
}

// ForceCancel is the admin escape hatch. It skips the per-action table but
// still refuses to touch terminal orders.
func (s *Service) ForceCancel(ctx context.Context, orderID, adminID, reason string) (*entities.Order, error) {
	if orderID == "" || adminID == "" || reason == "" {
		return nil, fmt.Errorf("%w: order id, admin id and reason", ErrMissingRequiredFields)
	}

	current, err := s.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("refetch order %s: %w", orderID, err)
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: force-cancel from %s", ErrInvalidTransition, current.Status)
	}

	order, err := s.gateway.ForceCancel(ctx, orderID, adminID, reason)
	if err != nil {
		return nil, fmt.Errorf("force cancel %s: %w", orderID, err)
	}

	s.logger.Warn("order force-cancelled by admin",
		logger.NewField("order_id", orderID),
		logger.NewField("admin_id", adminID),
		logger.NewField("reason", reason),
		logger.NewField("previous_status", current.Status.String()),
	)

	s.invalidator.InvalidateOrder(orderID)
	s.invalidator.InvalidateLists()

	return order, nil
}

// SetStatus overrides an order's status directly. Admin-only; bypasses the
// transition table but never resurrects terminal orders.
func (s *Service) SetStatus(ctx context.Context, orderID, adminID string, newStatus entities.OrderStatusType, reason string) (*entities.Order, error) {
	if orderID == "" || adminID == "" || reason == "" {
		return nil, fmt.Errorf("%w: order id, admin id and reason", ErrMissingRequiredFields)
	}
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	current, err := s.gateway.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("refetch order %s: %w", orderID, err)
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: status override from %s", ErrInvalidTransition, current.Status)
	}

	order, err := s.gateway.SetStatus(ctx, orderID, adminID, newStatus, reason)
	if err != nil {
		return nil, fmt.Errorf("set status on %s: %w", orderID, err)
	}

	s.logger.Warn("order status overridden by admin",
		logger.NewField("order_id", orderID),
		logger.NewField("admin_id", adminID),
		logger.NewField("reason", reason),
		logger.NewField("previous_status", current.Status.String()),
		logger.NewField("new_status", newStatus.String()),
	)

	s.invalidator.InvalidateOrder(orderID)
	s.invalidator.InvalidateLists()

	return order, nil
}
