package orders_search_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"portal/internal/dto"
	"portal/internal/entities"
	"portal/internal/gateway/backend/orders"
	"portal/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, "invalid search filters", err.Error())
		return
	}

	result, err := h.service.SearchOrders(r.Context(), filters)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrBackendRejected):
			respond.Fail(w, h.log, http.StatusUnprocessableEntity, "request rejected by backend", err.Error())
		default:
			respond.Fail(w, h.log, http.StatusBadGateway, "order backend unavailable", err.Error())
		}
		return
	}

	respond.OK(w, h.log, dto.FromSearchResult(result), "")
}

// parseFilters keeps absent and present-but-set parameters distinct: only
// parameters actually sent by the caller end up in the filter set.
func parseFilters(query url.Values) (entities.OrderSearchFilters, error) {
	var filters entities.OrderSearchFilters

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, errors.New("userId must be an integer")
		}
		filters.UserID = &userID
	}

	filters.VendorID = query.Get("vendorId")
	filters.Keyword = query.Get("keyword")
	filters.Sort = query.Get("sort")

	if raw := query.Get("status"); raw != "" {
		status := entities.OrderStatusType(raw)
		if !status.Valid() {
			return filters, errors.New("unknown status " + raw)
		}
		filters.Status = status
	}

	if raw := query.Get("dateFrom"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("dateFrom must be RFC3339")
		}
		filters.DateFrom = &from
	}
	if raw := query.Get("dateTo"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("dateTo must be RFC3339")
		}
		filters.DateTo = &to
	}

	if raw := query.Get("minAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("minAmount must be a decimal")
		}
		filters.MinAmount = &amount
	}
	if raw := query.Get("maxAmount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("maxAmount must be a decimal")
		}
		filters.MaxAmount = &amount
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return filters, errors.New("page must be a non-negative integer")
		}
		filters.Page = &page
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return filters, errors.New("size must be a positive integer")
		}
		filters.Size = &size
	}

	return filters, nil
}
