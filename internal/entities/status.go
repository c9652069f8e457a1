package entities

type OrderStatusType string

const (
	StatusRequested        OrderStatusType = "REQUESTED"
	StatusVendorAccepted   OrderStatusType = "VENDOR_ACCEPTED"
	StatusVendorRejected   OrderStatusType = "VENDOR_REJECTED"
	StatusNegotiating      OrderStatusType = "NEGOTIATING"
	StatusConfirmed        OrderStatusType = "CONFIRMED"
	StatusPreparing        OrderStatusType = "PREPARING"
	StatusReadyForDelivery OrderStatusType = "READY_FOR_DELIVERY"
	StatusAssigned         OrderStatusType = "ASSIGNED"
	StatusPickedUp         OrderStatusType = "PICKED_UP"
	StatusInTransit        OrderStatusType = "IN_TRANSIT"
	StatusDelivered        OrderStatusType = "DELIVERED"
	StatusCompleted        OrderStatusType = "COMPLETED"
	StatusCancelled        OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// transitions is the canonical lifecycle graph. The backend enforces it;
// this table is used to gate actions client-side before dispatch and to
// compute the set of actions offered for an order's last known status.
// Every non-terminal status additionally allows CANCELLED (see CanTransition).
var transitions = map[OrderStatusType][]OrderStatusType{
	StatusRequested:        {StatusVendorAccepted, StatusVendorRejected},
	StatusVendorAccepted:   {StatusNegotiating, StatusConfirmed},
	StatusNegotiating:      {StatusConfirmed},
	StatusConfirmed:        {StatusPreparing},
	StatusPreparing:        {StatusReadyForDelivery},
	StatusReadyForDelivery: {StatusAssigned},
	StatusAssigned:         {StatusPickedUp},
	StatusPickedUp:         {StatusInTransit},
	StatusInTransit:        {StatusDelivered},
	StatusDelivered:        {StatusCompleted},
	StatusVendorRejected:   {},
	StatusCompleted:        {},
	StatusCancelled:        {},
}

func (s OrderStatusType) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s OrderStatusType) Terminal() bool {
	switch s {
	case StatusVendorRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func CanTransition(from, to OrderStatusType) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s, cancellation included.
func NextStatuses(s OrderStatusType) []OrderStatusType {
	if !s.Valid() || s.Terminal() {
		return []OrderStatusType{}
	}

	next := make([]OrderStatusType, 0, len(transitions[s])+1)
	next = append(next, transitions[s]...)
	next = append(next, StatusCancelled)
	return next
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "PENDING"
	PaymentPaid     PaymentStatusType = "PAID"
	PaymentRefunded PaymentStatusType = "REFUNDED"
	PaymentFailed   PaymentStatusType = "FAILED"
)

func (p PaymentStatusType) String() string {
	return string(p)
}

func (p PaymentStatusType) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	default:
		return false
	}
}
