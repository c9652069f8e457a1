package entities

import "github.com/shopspring/decimal"

// CartItem is a single line of the user's current cart, as sent to
// checkout validation. Carts are never persisted by this layer.
type CartItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

type CheckoutRequest struct {
	UserID   int64
	VendorID string
	Items    []CartItem
}

// CheckoutValidation is the backend's advisory verdict on the cart. It
// gates order creation but carries no identity and is never stored.
type CheckoutValidation struct {
	Valid    bool
	Problems []string
	Summary  *CheckoutSummary
}

type CheckoutSummary struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DeliveryFee    decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	ItemCount      int
}
