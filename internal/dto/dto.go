// Package dto mirrors the remote backend's JSON contract. The backend owns
// these shapes; field names here must track its API, not this service's
// entities.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               string          `json:"id"`
	UserID           int64           `json:"userId"`
	VendorID         string          `json:"vendorId"`
	DeliveryPersonID *string         `json:"deliveryPersonId"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	LockerID         string          `json:"lockerId"`
	LocationID       string          `json:"locationId"`
	DeliveryTime     time.Time       `json:"deliveryTime"`
	DeliveryAddress  string          `json:"deliveryAddress"`
	Items            []OrderItem     `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	ChangeReason *string         `json:"changeReason,omitempty"`
}

type TimelineEntry struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
	ActorID     *string   `json:"actorId,omitempty"`
	Description *string   `json:"description,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// OrderPayload wraps a single order, matching the backend's
// data: { order: {...} } nesting.
type OrderPayload struct {
	Order Order `json:"order"`
}

type OrderDetailPayload struct {
	Order    Order           `json:"order"`
	Timeline []TimelineEntry `json:"timeline"`
}

type TrackingPayload struct {
	OrderID         string          `json:"orderId"`
	Status          string          `json:"status"`
	LockerID        string          `json:"lockerId"`
	LocationID      string          `json:"locationId"`
	DeliveryTime    time.Time       `json:"deliveryTime"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Timeline        []TimelineEntry `json:"timeline"`
}

type SearchPayload struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	TotalCount int64   `json:"totalCount"`
}

type StatsPayload struct {
	CountsByStatus map[string]int64 `json:"countsByStatus"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
}

type CheckoutValidationPayload struct {
	Valid    bool             `json:"valid"`
	Problems []string         `json:"problems"`
	Summary  *CheckoutSummary `json:"summary,omitempty"`
}

type CheckoutSummary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ItemCount      int             `json:"itemCount"`
}

type CartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type CheckoutValidateRequest struct {
	UserID   int64      `json:"userId"`
	VendorID string     `json:"vendorId"`
	Items    []CartItem `json:"items"`
}

type CreateOrderRequest struct {
	UserID          int64     `json:"userId"`
	VendorID        string    `json:"vendorId"`
	LocationID      string    `json:"locationId"`
	LockerID        string    `json:"lockerId"`
	DeliveryTime    time.Time `json:"deliveryTime"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
}

type ProposedItemChange struct {
	ProductID    string          `json:"productId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ChangeReason string          `json:"changeReason"`
}

// WorkflowActionRequest is the incoming body of POST /orders/{id}/actions.
// Action selects the command; the remaining fields are read per-action.
type WorkflowActionRequest struct {
	Action           string               `json:"action"`
	ActorID          string               `json:"actorId"`
	Reason           string               `json:"reason,omitempty"`
	AccessCode       string               `json:"accessCode,omitempty"`
	DeliveryPersonID string               `json:"deliveryPersonId,omitempty"`
	AssignedBy       string               `json:"assignedBy,omitempty"`
	Feedback         string               `json:"feedback,omitempty"`
	ProposedChanges  []ProposedItemChange `json:"proposedChanges,omitempty"`
}

// ActionsPayload answers "what can be done with this order right now".
type ActionsPayload struct {
	OrderID string   `json:"orderId"`
	Status  string   `json:"status"`
	Actions []string `json:"actions"`
}

type ForceCancelRequest struct {
	AdminID string `json:"adminId"`
	Reason  string `json:"reason"`
}

type StatusOverrideRequest struct {
	AdminID   string `json:"adminId"`
	NewStatus string `json:"newStatus"`
	Reason    string `json:"reason"`
}
