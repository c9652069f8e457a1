package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ActionType tags a workflow command. Unknown tags are rejected at the
// boundary with ErrUnknownAction instead of being forwarded to the backend.
type ActionType string

const (
	ActionVendorAccept     ActionType = "vendor-accept"
	ActionVendorReject     ActionType = "vendor-reject"
	ActionProposeChanges   ActionType = "propose-changes"
	ActionAcceptProposal   ActionType = "accept-proposal"
	ActionRejectProposal   ActionType = "reject-proposal"
	ActionStartPreparation ActionType = "start-preparation"
	ActionMarkReady        ActionType = "mark-ready"
	ActionAssignDelivery   ActionType = "assign-delivery"
	ActionConfirmPickup    ActionType = "confirm-pickup"
	ActionStartDelivery    ActionType = "start-delivery"
	ActionOpenLocker       ActionType = "open-locker"
	ActionComplete         ActionType = "complete"
	ActionConfirmReceipt   ActionType = "confirm-receipt"
	ActionCancel           ActionType = "cancel"
)

func (a ActionType) String() string {
	return string(a)
}

var (
	ErrUnknownAction         = errors.New("unknown workflow action")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// statusUnchanged marks access events that do not move the lifecycle.
const statusUnchanged OrderStatusType = ""

type actionSpec struct {
	actor ActorType
	from  []OrderStatusType
	// result is the status after the backend accepts the action.
	// statusUnchanged means the call is an access event; confirm-receipt
	// overrides this per source status (see ResultFor).
	result OrderStatusType

	needsReason      bool
	needsAccessCode  bool
	needsAssignee    bool
	needsItemChanges bool
}

var actionSpecs = map[ActionType]actionSpec{
	ActionVendorAccept: {
		actor:  ActorVendor,
		from:   []OrderStatusType{StatusRequested},
		result: StatusVendorAccepted,
	},
	ActionVendorReject: {
		actor:       ActorVendor,
		from:        []OrderStatusType{StatusRequested},
		result:      StatusVendorRejected,
		needsReason: true,
	},
	ActionProposeChanges: {
		actor:            ActorVendor,
		from:             []OrderStatusType{StatusVendorAccepted},
		result:           StatusNegotiating,
		needsItemChanges: true,
	},
	ActionAcceptProposal: {
		actor:  ActorUser,
		from:   []OrderStatusType{StatusNegotiating},
		result: StatusConfirmed,
	},
	ActionRejectProposal: {
		actor:       ActorUser,
		from:        []OrderStatusType{StatusNegotiating},
		result:      StatusCancelled,
		needsReason: true,
	},
	ActionStartPreparation: {
		actor:  ActorVendor,
		from:   []OrderStatusType{StatusConfirmed},
		result: StatusPreparing,
	},
	ActionMarkReady: {
		actor:  ActorVendor,
		from:   []OrderStatusType{StatusPreparing},
		result: StatusReadyForDelivery,
	},
	ActionAssignDelivery: {
		actor:         ActorAdmin,
		from:          []OrderStatusType{StatusReadyForDelivery},
		result:        StatusAssigned,
		needsAssignee: true,
	},
	ActionConfirmPickup: {
		actor:  ActorDeliveryPerson,
		from:   []OrderStatusType{StatusAssigned},
		result: StatusPickedUp,
	},
	ActionStartDelivery: {
		actor:  ActorDeliveryPerson,
		from:   []OrderStatusType{StatusPickedUp},
		result: StatusInTransit,
	},
	ActionOpenLocker: {
		actor:           ActorUser,
		from:            []OrderStatusType{StatusInTransit, StatusDelivered},
		result:          statusUnchanged,
		needsAccessCode: true,
	},
	// Feedback on complete is optional and forwarded to the backend as-is.
	ActionComplete: {
		actor:  ActorUser,
		from:   []OrderStatusType{StatusDelivered},
		result: StatusCompleted,
	},
	ActionConfirmReceipt: {
		actor:  ActorUser,
		from:   []OrderStatusType{StatusInTransit, StatusDelivered},
		result: statusUnchanged,
	},
	ActionCancel: {
		actor:       ActorUser,
		from:        nil, // any non-terminal status
		result:      StatusCancelled,
		needsReason: true,
	},
}

// ProposedItemChange is one line-item modification offered by the vendor
// during negotiation.
type ProposedItemChange struct {
	ProductID    string
	Quantity     int
	UnitPrice    decimal.Decimal
	ChangeReason string
}

// Command is a parsed, typed workflow request. It is constructed only via
// ParseCommand so every instance carries a known action tag.
type Command struct {
	Action  ActionType
	OrderID string
	// ActorID identifies the caller in the role the action requires
	// (user, vendor, delivery person or admin id).
	ActorID string

	Reason           string
	AccessCode       string
	DeliveryPersonID string
	AssignedBy       string
	Feedback         string
	ProposedChanges  []ProposedItemChange
}

// ParseCommand validates the action tag and the per-action required fields.
// It performs no status checks; those need the order's current status and
// happen at execution time.
func ParseCommand(action ActionType, orderID string, cmd Command) (*Command, error) {
	spec, ok := actionSpecs[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if orderID == "" || cmd.ActorID == "" {
		return nil, fmt.Errorf("%w: order id and actor id", ErrMissingRequiredFields)
	}
	if spec.needsReason && cmd.Reason == "" {
		return nil, fmt.Errorf("%w: reason for %s", ErrMissingRequiredFields, action)
	}
	if spec.needsAccessCode && cmd.AccessCode == "" {
		return nil, fmt.Errorf("%w: access code for %s", ErrMissingRequiredFields, action)
	}
	if spec.needsAssignee && (cmd.DeliveryPersonID == "" || cmd.AssignedBy == "") {
		return nil, fmt.Errorf("%w: delivery person and assigner for %s", ErrMissingRequiredFields, action)
	}
	if spec.needsItemChanges && len(cmd.ProposedChanges) == 0 {
		return nil, fmt.Errorf("%w: proposed changes for %s", ErrMissingRequiredFields, action)
	}

	cmd.Action = action
	cmd.OrderID = orderID
	return &cmd, nil
}

// Actor returns the role the action is performed as.
func (c *Command) Actor() ActorType {
	return actionSpecs[c.Action].actor
}

// AllowedFrom reports whether the command is legal given the order's
// last known status.
func (c *Command) AllowedFrom(status OrderStatusType) bool {
	spec, ok := actionSpecs[c.Action]
	if !ok {
		return false
	}
	if spec.from == nil {
		return !status.Terminal() && status.Valid()
	}
	for _, s := range spec.from {
		if s == status {
			return true
		}
	}
	return false
}

// ResultFor returns the status the backend is expected to report after the
// action succeeds from the given status. Access events return the source
// status unchanged.
func (c *Command) ResultFor(from OrderStatusType) OrderStatusType {
	switch c.Action {
	case ActionOpenLocker:
		return from
	case ActionConfirmReceipt:
		if from == StatusDelivered {
			return StatusCompleted
		}
		return StatusDelivered
	default:
		return actionSpecs[c.Action].result
	}
}

// AvailableActions lists the actions legal from the given status, in a
// stable order, optionally narrowed to one actor role. The UI renders its
// action buttons from this set and must re-fetch the order before calling.
func AvailableActions(status OrderStatusType, actor ActorType) []ActionType {
	ordered := []ActionType{
		ActionVendorAccept,
		ActionVendorReject,
		ActionProposeChanges,
		ActionAcceptProposal,
		ActionRejectProposal,
		ActionStartPreparation,
		ActionMarkReady,
		ActionAssignDelivery,
		ActionConfirmPickup,
		ActionStartDelivery,
		ActionOpenLocker,
		ActionConfirmReceipt,
		ActionComplete,
		ActionCancel,
	}

	actions := make([]ActionType, 0, 4)
	for _, a := range ordered {
		if actor != "" && actionSpecs[a].actor != actor {
			continue
		}
		probe := Command{Action: a}
		if probe.AllowedFrom(status) {
			actions = append(actions, a)
		}
	}
	return actions
}
