package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the workflow API root of a local n8n instance.
const DefaultAPIURL = "http://localhost:5678/api/v1"

// Workflow is the subset of a workflow record the migration tools need.
type Workflow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client talks to the n8n public REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL authenticated with apiKey.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListWorkflows returns every workflow on the server.
func (c *Client) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/workflows", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list workflows: status %d: %s", resp.StatusCode, readError(resp))
	}

	var payload struct {
		Data []Workflow `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return payload.Data, nil
}

// CreateWorkflow submits a sanitized workflow document. The server assigns a
// fresh id, so submitting the same document twice produces two records.
func (c *Client) CreateWorkflow(ctx context.Context, doc map[string]any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/workflows", bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create workflow: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("create workflow: status %d: %s", resp.StatusCode, readError(resp))
	}
	return nil
}

// DeleteWorkflow removes one workflow by id.
func (c *Client) DeleteWorkflow(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/workflows/"+id, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete workflow %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete workflow %s: status %d: %s", id, resp.StatusCode, readError(resp))
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("X-N8N-API-KEY", c.apiKey)
}

func readError(resp *http.Response) string {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return string(msg)
}
