package orders

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"portal/internal/dto"
	"portal/internal/entities"
)

func toCheckoutRequest(req entities.CheckoutRequest) dto.CheckoutValidateRequest {
	items := make([]dto.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = dto.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return dto.CheckoutValidateRequest{
		UserID:   req.UserID,
		VendorID: req.VendorID,
		Items:    items,
	}
}

func toCreateOrderRequest(req entities.OrderCreate) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		UserID:          req.UserID,
		VendorID:        req.VendorID,
		LocationID:      req.LocationID,
		LockerID:        req.LockerID,
		DeliveryTime:    req.DeliveryTime,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	}
}

// toTransitionRequest flattens a command into the backend's action body.
// Empty optional fields are omitted from the JSON entirely.
func toTransitionRequest(cmd entities.Command) dto.WorkflowActionRequest {
	var changes []dto.ProposedItemChange
	if len(cmd.ProposedChanges) > 0 {
		changes = make([]dto.ProposedItemChange, len(cmd.ProposedChanges))
		for i, c := range cmd.ProposedChanges {
			changes[i] = dto.ProposedItemChange{
				ProductID:    c.ProductID,
				Quantity:     c.Quantity,
				UnitPrice:    c.UnitPrice,
				ChangeReason: c.ChangeReason,
			}
		}
	}

	return dto.WorkflowActionRequest{
		Action:           cmd.Action.String(),
		ActorID:          cmd.ActorID,
		Reason:           cmd.Reason,
		AccessCode:       cmd.AccessCode,
		DeliveryPersonID: cmd.DeliveryPersonID,
		AssignedBy:       cmd.AssignedBy,
		Feedback:         cmd.Feedback,
		ProposedChanges:  changes,
	}
}

// searchQuery renders filters into query parameters. Absent filters
// produce no parameter at all; the backend treats a present-but-empty
// value differently from an omitted one.
func searchQuery(f entities.OrderSearchFilters) url.Values {
	query := url.Values{}

	if f.UserID != nil {
		query.Set("userId", strconv.FormatInt(*f.UserID, 10))
	}
	if f.VendorID != "" {
		query.Set("vendorId", f.VendorID)
	}
	if f.Status != "" {
		query.Set("status", f.Status.String())
	}
	if f.DateFrom != nil {
		query.Set("dateFrom", f.DateFrom.UTC().Format(time.RFC3339))
	}
	if f.DateTo != nil {
		query.Set("dateTo", f.DateTo.UTC().Format(time.RFC3339))
	}
	if f.MinAmount != nil {
		query.Set("minAmount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		query.Set("maxAmount", f.MaxAmount.String())
	}
	if f.Keyword != "" {
		query.Set("keyword", f.Keyword)
	}
	if f.Sort != "" {
		query.Set("sort", f.Sort)
	}
	if f.Page != nil {
		query.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Size != nil {
		query.Set("size", strconv.Itoa(*f.Size))
	}

	return query
}

func decodeOrder(data json.RawMessage) (*entities.Order, error) {
	var payload dto.OrderPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode order payload: %w", err)
	}
	return dto.ToOrder(&payload.Order), nil
}

func decodeOrderDetail(data json.RawMessage) (*entities.OrderDetail, error) {
	var payload dto.OrderDetailPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode order detail payload: %w", err)
	}
	return &entities.OrderDetail{
		Order:    *dto.ToOrder(&payload.Order),
		Timeline: dto.ToTimeline(payload.Timeline),
	}, nil
}

func decodeTracking(data json.RawMessage) (*entities.OrderTracking, error) {
	var payload dto.TrackingPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode tracking payload: %w", err)
	}
	return &entities.OrderTracking{
		OrderID:         payload.OrderID,
		Status:          entities.OrderStatusType(payload.Status),
		LockerID:        payload.LockerID,
		LocationID:      payload.LocationID,
		DeliveryTime:    payload.DeliveryTime,
		DeliveryAddress: payload.DeliveryAddress,
		Timeline:        dto.ToTimeline(payload.Timeline),
	}, nil
}

func decodeTimeline(data json.RawMessage) ([]entities.TimelineEntry, error) {
	var payload struct {
		Timeline []dto.TimelineEntry `json:"timeline"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode history payload: %w", err)
	}
	return dto.ToTimeline(payload.Timeline), nil
}

func decodeStats(data json.RawMessage) (*entities.OrderStats, error) {
	var payload dto.StatsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode stats payload: %w", err)
	}

	counts := make(map[entities.OrderStatusType]int64, len(payload.CountsByStatus))
	for status, count := range payload.CountsByStatus {
		counts[entities.OrderStatusType(status)] = count
	}

	return &entities.OrderStats{
		CountsByStatus: counts,
		TotalOrders:    payload.TotalOrders,
		TotalRevenue:   payload.TotalRevenue,
	}, nil
}

func decodeSearchResult(data json.RawMessage) (*entities.OrderSearchResult, error) {
	var payload dto.SearchPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode search payload: %w", err)
	}

	result := &entities.OrderSearchResult{
		Orders:     make([]entities.Order, len(payload.Orders)),
		Page:       payload.Page,
		Size:       payload.Size,
		TotalCount: payload.TotalCount,
	}
	for i := range payload.Orders {
		result.Orders[i] = *dto.ToOrder(&payload.Orders[i])
	}
	return result, nil
}

func decodeCheckoutValidation(data json.RawMessage) (*entities.CheckoutValidation, error) {
	var payload dto.CheckoutValidationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode checkout validation payload: %w", err)
	}

	validation := &entities.CheckoutValidation{
		Valid:    payload.Valid,
		Problems: payload.Problems,
	}
	if payload.Summary != nil {
		validation.Summary = &entities.CheckoutSummary{
			Subtotal:       payload.Summary.Subtotal,
			TaxAmount:      payload.Summary.TaxAmount,
			DeliveryFee:    payload.Summary.DeliveryFee,
			DiscountAmount: payload.Summary.DiscountAmount,
			TotalAmount:    payload.Summary.TotalAmount,
			ItemCount:      payload.Summary.ItemCount,
		}
	}
	return validation, nil
}
