// Package assist wraps the external LLM endpoint used for milestone and
// cost-estimate generation. Requests carry a prompt and a JSON schema the
// response must conform to; there is no streaming.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var ErrNotConfigured = errors.New("llm endpoint not configured")

// Request is one structured LLM invocation.
type Request struct {
	Prompt             string                 `json:"prompt"`
	ResponseJSONSchema map[string]interface{} `json:"response_json_schema"`
}

// Invoker issues structured LLM requests.
type Invoker interface {
	InvokeLLM(ctx context.Context, req Request) (json.RawMessage, error)
}

// Client calls the LLM endpoint over HTTP.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient builds a client from the LLM_API_URL and LLM_API_KEY
// environment variables. A missing URL yields a client whose calls return
// ErrNotConfigured.
func NewClient() *Client {
	return NewClientWith(os.Getenv("LLM_API_URL"), os.Getenv("LLM_API_KEY"))
}

// NewClientWith builds a client against an explicit endpoint.
func NewClientWith(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

// InvokeLLM posts the request and returns the raw structured response.
func (c *Client) InvokeLLM(ctx context.Context, req Request) (json.RawMessage, error) {
	if c.endpoint == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal llm request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read llm response: %w", err)
	}
	if !json.Valid(data) {
		return nil, errors.New("llm response is not valid JSON")
	}
	return json.RawMessage(data), nil
}
