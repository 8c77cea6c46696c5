package cloudbeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"innflow/services/engine"
)

const (
	apiBase       = "https://hotels.cloudbeds.com/api/v1.1"
	clientTimeout = 30 * time.Second
)

// apiClient talks to the Cloudbeds REST surface. Every call carries the
// bearer token and the property ID header; responses use the
// {success, data|message} envelope, and a non-2xx status and
// success:false are treated identically as failure.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
	propertyID string
}

func newAPIClient(baseURL, token, propertyID string) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: clientTimeout},
		token:      token,
		propertyID: propertyID,
	}
}

// envelope is the wire shape shared by every Cloudbeds response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *apiClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return engine.NewEngineError(providerName, "failed to build request", err)
	}
	return c.do(req, out)
}

func (c *apiClient) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return engine.NewEngineError(providerName, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *apiClient) putForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return engine.NewEngineError(providerName, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Property-ID", c.propertyID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return engine.NewEngineError(providerName, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return engine.NewEngineError(providerName, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return engine.NewEngineError(providerName,
			fmt.Sprintf("HTTP %d from %s", resp.StatusCode, req.URL.Path),
			fmt.Errorf("%s", strings.TrimSpace(string(body))))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return engine.NewEngineError(providerName, "malformed response body", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "provider reported failure"
		}
		return engine.NewEngineError(providerName, msg, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return engine.NewEngineError(providerName, "failed to decode response data", err)
		}
	}
	return nil
}
