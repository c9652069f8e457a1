package workflow

import (
	"fmt"
	"strings"

	"portal/internal/entities"
)

func validateCreate(req entities.OrderCreate) error {
	var missing []string

	if req.UserID == 0 {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(req.VendorID) == "" {
		missing = append(missing, "vendorId")
	}
	if strings.TrimSpace(req.LocationID) == "" {
		missing = append(missing, "locationId")
	}
	if strings.TrimSpace(req.LockerID) == "" {
		missing = append(missing, "lockerId")
	}
	if req.DeliveryTime.IsZero() {
		missing = append(missing, "deliveryTime")
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		missing = append(missing, "deliveryAddress")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		missing = append(missing, "paymentMethod")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	return nil
}
