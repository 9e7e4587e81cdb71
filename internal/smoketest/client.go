package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/Alwanly/vendor-portal-diagnostics/internal/config"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

// ServiceRequestsPath is the route exercised by the smoke test.
const ServiceRequestsPath = "/api/service-requests"

// Response is a decoded reply from the portal API.
type Response struct {
	StatusCode int
	RequestID  string
	// Body is the JSON body indented for display.
	Body []byte
}

// IClient fetches service requests from a running portal.
type IClient interface {
	FetchServiceRequests(ctx context.Context, vendorID string) (*Response, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.CanonicalLogger
}

// NewClient creates a client for the portal at cfg.BaseURL
func NewClient(cfg *config.SmokeTestConfig, log *logger.CanonicalLogger) IClient {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     log,
	}
}

// FetchServiceRequests issues GET /api/service-requests?vendor_id=<vendorID>. Any HTTP
// status is returned as a Response; only transport and JSON decoding failures are errors.
func (c *client) FetchServiceRequests(ctx context.Context, vendorID string) (*Response, error) {
	target := fmt.Sprintf("%s%s?%s", c.baseURL, ServiceRequestsPath, url.Values{"vendor_id": {vendorID}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("sending smoke test request",
		logger.String(logger.FieldTargetURL, target),
		logger.String(logger.FieldVendorID, vendorID),
		logger.String(logger.FieldRequestID, requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("smoke test request failed",
			logger.String(logger.FieldRequestID, requestID),
			logger.Bool(logger.FieldSuccess, false),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to decode response body (status %d): %w", resp.StatusCode, err)
	}

	c.logger.Debug("smoke test response received",
		logger.Int(logger.FieldStatusCode, resp.StatusCode),
		logger.String(logger.FieldRequestID, requestID),
		logger.Bool(logger.FieldSuccess, true),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
		Body:       pretty.Bytes(),
	}, nil
}
