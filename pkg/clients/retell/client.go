package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/digitalocean/lead-callback/pkg/models"
)

const createPhoneCallPath = "/v2/create-phone-call"

// Client defines the interface for placing outbound calls through the Retell API
type Client interface {
	CreatePhoneCall(ctx context.Context, payload models.CallPayload) (*models.CallResult, error)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Retell client. A zero timeout leaves the request
// bound only by its context.
func NewClient(apiKey, baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) CreatePhoneCall(ctx context.Context, payload models.CallPayload) (*models.CallResult, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPhoneCallPath, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication and content type headers
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Details:    errorDetails(resp.StatusCode, body),
		}
	}

	if readErr != nil {
		return nil, &TransportError{Err: fmt.Errorf("error reading response: %w", readErr)}
	}

	return &models.CallResult{
		StatusCode: resp.StatusCode,
		Body:       decodeBody(body),
	}, nil
}

// decodeBody returns the JSON value of body, the raw text when it is not JSON,
// and nil when it is empty
func decodeBody(body []byte) interface{} {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	return decoded
}

func errorDetails(status int, body []byte) interface{} {
	switch decoded := decodeBody(body).(type) {
	case nil:
		return map[string]interface{}{"message": http.StatusText(status)}
	case string:
		return map[string]interface{}{"message": decoded}
	default:
		return decoded
	}
}
