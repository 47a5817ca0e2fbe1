package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"taller_andino/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingInventoryServiceURL = errors.New("missing INVENTORY_SERVICE_URL")
	ErrInventoryCallFailed        = errors.New("inventory service call failed")
)

// HTTPGateway talks to the external inventory subsystem over HTTP.
//
// The engine's contract toward inventory is three independent calls: stock
// decrement, stock increment and movement logging. There is no two-phase
// commit between these calls and the engine's own writes.
//
// Env vars:
//   - INVENTORY_SERVICE_URL (e.g. http://inventory:8081)
//   - INVENTORY_MOCK (truthy values skip the remote call; local-friendly)

type HTTPGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
	log      *zap.SugaredLogger
}

var _ interfaces.IInventoryGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string, log *zap.SugaredLogger) (*HTTPGateway, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if isInventoryMockEnabled() {
		log.Infow("inventory gateway mock mode enabled")
		return &HTTPGateway{mockMode: true, log: log}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingInventoryServiceURL
	}

	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

func (g *HTTPGateway) DecrementStock(ctx context.Context, inventoryID string, qty int) error {
	return g.post(ctx, fmt.Sprintf("/v1/stock/%s/decrement", inventoryID), map[string]any{"quantity": qty})
}

func (g *HTTPGateway) IncrementStock(ctx context.Context, inventoryID string, qty int) error {
	return g.post(ctx, fmt.Sprintf("/v1/stock/%s/increment", inventoryID), map[string]any{"quantity": qty})
}

func (g *HTTPGateway) RecordMovement(ctx context.Context, inventoryID string, movementType interfaces.MovementType, qty int, notes string) error {
	return g.post(ctx, fmt.Sprintf("/v1/stock/%s/movements", inventoryID), map[string]any{
		"type":     string(movementType),
		"quantity": qty,
		"notes":    notes,
	})
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload map[string]any) error {
	if g.mockMode {
		g.log.Infow("inventory gateway mock call", "path", path, "payload", payload)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInventoryCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %d", ErrInventoryCallFailed, path, resp.StatusCode)
	}
	return nil
}

func isInventoryMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("INVENTORY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
