package entities

import "time"

type ActorType string

const (
	ActorUser           ActorType = "USER"
	ActorVendor         ActorType = "VENDOR"
	ActorDeliveryPerson ActorType = "DELIVERY_PERSON"
	ActorSystem         ActorType = "SYSTEM"
	ActorAdmin          ActorType = "ADMIN"
)

func (a ActorType) String() string {
	return string(a)
}

func (a ActorType) Valid() bool {
	switch a {
	case ActorUser, ActorVendor, ActorDeliveryPerson, ActorSystem, ActorAdmin:
		return true
	default:
		return false
	}
}

// TimelineEntry is one append-only audit record of an order. Entries are
// written exclusively by the backend in response to workflow actions; this
// layer only reads them back.
type TimelineEntry struct {
	Status      OrderStatusType
	Timestamp   time.Time
	Actor       ActorType
	ActorID     *string
	Description *string
	Notes       *string
}
