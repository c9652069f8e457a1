package dto

import (
	"portal/internal/entities"
)

func FromOrder(o *entities.Order) Order {
	return Order{
		ID:               o.ID,
		UserID:           o.UserID,
		VendorID:         o.VendorID,
		DeliveryPersonID: o.DeliveryPersonID,
		Status:           o.Status.String(),
		PaymentStatus:    o.PaymentStatus.String(),
		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		DeliveryFee:      o.DeliveryFee,
		DiscountAmount:   o.DiscountAmount,
		TotalAmount:      o.TotalAmount,
		LockerID:         o.LockerID,
		LocationID:       o.LocationID,
		DeliveryTime:     o.DeliveryTime,
		DeliveryAddress:  o.DeliveryAddress,
		Items:            FromOrderItems(o.Items),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrderItems(items []entities.OrderItem) []OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]OrderItem, len(items))
	for i, item := range items {
		out[i] = OrderItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			ChangeReason: item.ChangeReason,
		}
	}
	return out
}

func FromTimeline(entries []entities.TimelineEntry) []TimelineEntry {
	out := make([]TimelineEntry, len(entries))
	for i, e := range entries {
		out[i] = TimelineEntry{
			Status:      e.Status.String(),
			Timestamp:   e.Timestamp,
			Actor:       e.Actor.String(),
			ActorID:     e.ActorID,
			Description: e.Description,
			Notes:       e.Notes,
		}
	}
	return out
}

func FromOrderPayload(o *entities.Order) OrderPayload {
	return OrderPayload{Order: FromOrder(o)}
}

func FromOrderDetail(d *entities.OrderDetail) OrderDetailPayload {
	return OrderDetailPayload{
		Order:    FromOrder(&d.Order),
		Timeline: FromTimeline(d.Timeline),
	}
}

func FromTracking(t *entities.OrderTracking) TrackingPayload {
	return TrackingPayload{
		OrderID:         t.OrderID,
		Status:          t.Status.String(),
		LockerID:        t.LockerID,
		LocationID:      t.LocationID,
		DeliveryTime:    t.DeliveryTime,
		DeliveryAddress: t.DeliveryAddress,
		Timeline:        FromTimeline(t.Timeline),
	}
}

func FromSearchResult(r *entities.OrderSearchResult) SearchPayload {
	orders := make([]Order, len(r.Orders))
	for i := range r.Orders {
		orders[i] = FromOrder(&r.Orders[i])
	}
	return SearchPayload{
		Orders:     orders,
		Page:       r.Page,
		Size:       r.Size,
		TotalCount: r.TotalCount,
	}
}

func FromStats(s *entities.OrderStats) StatsPayload {
	counts := make(map[string]int64, len(s.CountsByStatus))
	for status, count := range s.CountsByStatus {
		counts[status.String()] = count
	}
	return StatsPayload{
		CountsByStatus: counts,
		TotalOrders:    s.TotalOrders,
		TotalRevenue:   s.TotalRevenue,
	}
}

func FromCheckoutValidation(v *entities.CheckoutValidation) CheckoutValidationPayload {
	payload := CheckoutValidationPayload{
		Valid:    v.Valid,
		Problems: v.Problems,
	}
	if payload.Problems == nil {
		payload.Problems = []string{}
	}
	if v.Summary != nil {
		payload.Summary = &CheckoutSummary{
			Subtotal:       v.Summary.Subtotal,
			TaxAmount:      v.Summary.TaxAmount,
			DeliveryFee:    v.Summary.DeliveryFee,
			DiscountAmount: v.Summary.DiscountAmount,
			TotalAmount:    v.Summary.TotalAmount,
			ItemCount:      v.Summary.ItemCount,
		}
	}
	return payload
}

func FromActions(orderID string, status entities.OrderStatusType, actions []entities.ActionType) ActionsPayload {
	tags := make([]string, len(actions))
	for i, a := range actions {
		tags[i] = a.String()
	}
	return ActionsPayload{
		OrderID: orderID,
		Status:  status.String(),
		Actions: tags,
	}
}

func ToOrder(o *Order) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:               o.ID,
		UserID:           o.UserID,
		VendorID:         o.VendorID,
		DeliveryPersonID: o.DeliveryPersonID,
		Status:           entities.OrderStatusType(o.Status),
		PaymentStatus:    entities.PaymentStatusType(o.PaymentStatus),
		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		DeliveryFee:      o.DeliveryFee,
		DiscountAmount:   o.DiscountAmount,
		TotalAmount:      o.TotalAmount,
		LockerID:         o.LockerID,
		LocationID:       o.LocationID,
		DeliveryTime:     o.DeliveryTime,
		DeliveryAddress:  o.DeliveryAddress,
		Items:            ToOrderItems(o.Items),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func ToOrderItems(items []OrderItem) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.OrderItem, len(items))
	for i, item := range items {
		out[i] = entities.OrderItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			ChangeReason: item.ChangeReason,
		}
	}
	return out
}

func ToTimeline(entries []TimelineEntry) []entities.TimelineEntry {
	out := make([]entities.TimelineEntry, len(entries))
	for i, e := range entries {
		out[i] = entities.TimelineEntry{
			Status:      entities.OrderStatusType(e.Status),
			Timestamp:   e.Timestamp,
			Actor:       entities.ActorType(e.Actor),
			ActorID:     e.ActorID,
			Description: e.Description,
			Notes:       e.Notes,
		}
	}
	return out
}
