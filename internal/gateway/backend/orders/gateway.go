package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portal/internal/dto"
	"portal/internal/entities"
	"portal/internal/pkg/authctx"
)

const (
	serviceName = "order-backend"

	ordersPath      = "/api/v1/orders"
	checkoutPath    = "/api/v1/checkout"
	adminOrdersPath = "/api/v1/admin/orders"
)

// Gateway is the workflow client: it translates each workflow action or
// read into exactly one HTTP call against the remote order backend and
// normalizes errors. It performs no retries and no deduplication; racing
// transition requests are arbitrated by the backend alone.
type Gateway struct {
	client  doer
	baseURL string
}

func New(client doer, baseURL string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (g *Gateway) ValidateCheckout(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutValidation, error) {
	body := toCheckoutRequest(req)

	data, err := g.call(ctx, "ValidateCheckout", http.MethodPost, checkoutPath+"/validate", nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, validate checkout: %w", err)
	}

	return decodeCheckoutValidation(data)
}

func (g *Gateway) CreateOrder(ctx context.Context, req entities.OrderCreate) (*entities.Order, error) {
	body := toCreateOrderRequest(req)

	data, err := g.call(ctx, "CreateOrder", http.MethodPost, ordersPath, nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, create order: %w", err)
	}

	return decodeOrder(data)
}

// ExecuteTransition dispatches one workflow command. The action tag doubles
// as the backend's path segment (vendor-accept, confirm-pickup, ...).
func (g *Gateway) ExecuteTransition(ctx context.Context, cmd entities.Command) (*entities.Order, error) {
	path := ordersPath + "/" + url.PathEscape(cmd.OrderID) + "/" + cmd.Action.String()
	body := toTransitionRequest(cmd)

	data, err := g.call(ctx, "Transition:"+cmd.Action.String(), http.MethodPost, path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, %s %s: %w", cmd.Action, cmd.OrderID, err)
	}

	return decodeOrder(data)
}

func (g *Gateway) ForceCancel(ctx context.Context, orderID, adminID, reason string) (*entities.Order, error) {
	path := adminOrdersPath + "/" + url.PathEscape(orderID) + "/force-cancel"
	body := dto.ForceCancelRequest{AdminID: adminID, Reason: reason}

	data, err := g.call(ctx, "ForceCancel", http.MethodPost, path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, force cancel %s: %w", orderID, err)
	}

	return decodeOrder(data)
}

func (g *Gateway) SetStatus(ctx context.Context, orderID, adminID string, newStatus entities.OrderStatusType, reason string) (*entities.Order, error) {
	path := adminOrdersPath + "/" + url.PathEscape(orderID) + "/status"
	body := dto.StatusOverrideRequest{AdminID: adminID, NewStatus: newStatus.String(), Reason: reason}

	data, err := g.call(ctx, "SetStatus", http.MethodPut, path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, set status %s: %w", orderID, err)
	}

	return decodeOrder(data)
}

func (g *Gateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	path := ordersPath + "/" + url.PathEscape(orderID)

	data, err := g.call(ctx, "GetOrderById", http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, get order %s: %w", orderID, err)
	}

	return decodeOrder(data)
}

func (g *Gateway) GetOrderDetails(ctx context.Context, orderID string) (*entities.OrderDetail, error) {
	path := ordersPath + "/" + url.PathEscape(orderID) + "/details"

	data, err := g.call(ctx, "GetOrderDetails", http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, get order details %s: %w", orderID, err)
	}

	return decodeOrderDetail(data)
}

func (g *Gateway) GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error) {
	path := ordersPath + "/" + url.PathEscape(orderID) + "/tracking"

	data, err := g.call(ctx, "GetTracking", http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, get tracking %s: %w", orderID, err)
	}

	return decodeTracking(data)
}

func (g *Gateway) GetHistory(ctx context.Context, orderID string) ([]entities.TimelineEntry, error) {
	path := ordersPath + "/" + url.PathEscape(orderID) + "/history"

	data, err := g.call(ctx, "GetHistory", http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, get history %s: %w", orderID, err)
	}

	return decodeTimeline(data)
}

func (g *Gateway) GetStats(ctx context.Context) (*entities.OrderStats, error) {
	data, err := g.call(ctx, "GetStats", http.MethodGet, ordersPath+"/stats", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, get stats: %w", err)
	}

	return decodeStats(data)
}

func (g *Gateway) SearchOrders(ctx context.Context, filters entities.OrderSearchFilters) (*entities.OrderSearchResult, error) {
	query := searchQuery(filters)

	data, err := g.call(ctx, "SearchOrders", http.MethodGet, ordersPath+"/search", query, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway orders, search orders: %w", err)
	}

	return decodeSearchResult(data)
}

// call performs a single request and records Prometheus metrics per
// operation. No retries here: validation races against concurrent
// transitions must surface the backend's verdict, not mask it.
func (g *Gateway) call(ctx context.Context, op, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	start := time.Now()

	data, code, err := g.roundTrip(ctx, method, path, query, body)

	BackendRequestDuration.WithLabelValues(serviceName, op, code).Observe(time.Since(start).Seconds())
	BackendRequestTotal.WithLabelValues(serviceName, op, code).Inc()

	return data, err
}

func (g *Gateway) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, string, error) {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, "ERR", fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, "ERR", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := authctx.Authorization(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "ERR", fmt.Errorf("backend unreachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	code := strconv.Itoa(resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, code, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, code, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, code, normalizeError(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		// Non-JSON success bodies are passed through as text instead of
		// being force-parsed; the workflow surface has no use for them.
		return nil, code, fmt.Errorf("unexpected content type %q: %s", resp.Header.Get("Content-Type"), truncate(raw))
	}

	var env dto.BackendEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, code, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Success {
		return nil, code, fmt.Errorf("%w: %s", ErrBackendRejected, messageOrDefault(env.Message, "backend reported failure"))
	}

	return env.Data, code, nil
}

// normalizeError extracts a human-readable message from a non-2xx reply:
// envelope message first, raw body next, generic status text last.
func normalizeError(status int, contentType string, raw []byte) error {
	message := http.StatusText(status)

	if isJSON(contentType) {
		var env dto.BackendEnvelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			message = env.Message
		} else if len(bytes.TrimSpace(raw)) > 0 {
			message = truncate(raw)
		}
	} else if len(bytes.TrimSpace(raw)) > 0 {
		message = truncate(raw)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrOrderNotFound, message)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", ErrBackendRejected, message)
	default:
		return fmt.Errorf("backend error (HTTP %d): %s", status, message)
	}
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "json")
}

func messageOrDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

const maxErrorBodyLen = 512

func truncate(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > maxErrorBodyLen {
		return text[:maxErrorBodyLen]
	}
	return text
}
