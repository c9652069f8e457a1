package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               string
	UserID           int64
	VendorID         string
	DeliveryPersonID *string
	Status           OrderStatusType
	PaymentStatus    PaymentStatusType

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DeliveryFee    decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	LockerID        string
	LocationID      string
	DeliveryTime    time.Time
	DeliveryAddress string

	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsistentTotals checks total = subtotal + tax + delivery fee - discount.
// Orders are never mutated locally, so a violation means the backend sent
// an inconsistent payload.
func (o *Order) ConsistentTotals() bool {
	expected := o.Subtotal.
		Add(o.TaxAmount).
		Add(o.DeliveryFee).
		Sub(o.DiscountAmount)
	return o.TotalAmount.Equal(expected)
}

type OrderItem struct {
	ProductID    string
	Name         string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	ChangeReason *string
}

// OrderCreate carries everything checkout needs to place an order.
type OrderCreate struct {
	UserID          int64
	VendorID        string
	LocationID      string
	LockerID        string
	DeliveryTime    time.Time
	DeliveryAddress string
	PaymentMethod   string
}

// OrderDetail is the full read model: the order plus its audit trail.
type OrderDetail struct {
	Order    Order
	Timeline []TimelineEntry
}

type OrderTracking struct {
	OrderID         string
	Status          OrderStatusType
	LockerID        string
	LocationID      string
	DeliveryTime    time.Time
	DeliveryAddress string
	Timeline        []TimelineEntry
}
