package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

// Client talks to the calling backend, the service that owns call history,
// the voice provider integration, tools and agent configuration. The gateway
// assumes nothing about the backend beyond the fields it reads here.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend reachable at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// backendError is the error envelope the backend returns on failures.
type backendError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request for %s: %w", path, err)
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend at %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response from %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var remote backendError
		if err := json.Unmarshal(respBody, &remote); err == nil && remote.Error != "" {
			return models.NewServiceError(resp.StatusCode, string(respBody), remote.Error)
		}
		return models.NewServiceError(resp.StatusCode, string(respBody),
			fmt.Sprintf("backend returned status %d for %s", resp.StatusCode, path))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal backend response from %s: %w", path, err)
		}
	}
	return nil
}

// CallHistory fetches the full call record list, newest first.
func (c *Client) CallHistory(ctx context.Context) ([]models.CallRecord, error) {
	var records []models.CallRecord
	if err := c.doJSON(ctx, http.MethodGet, "/call-history", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

type startOutboundRequest struct {
	PhoneNumber string   `json:"phone_number"`
	FileIDs     []string `json:"file_ids"`
}

type startOutboundResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}

// StartOutboundCall asks the backend to dial the given number. Whitespace in
// the number is stripped before sending. It returns the backend session id.
func (c *Client) StartOutboundCall(ctx context.Context, phoneNumber string, fileIDs []string) (string, error) {
	if fileIDs == nil {
		fileIDs = []string{}
	}
	req := startOutboundRequest{
		PhoneNumber: strings.ReplaceAll(phoneNumber, " ", ""),
		FileIDs:     fileIDs,
	}

	var resp startOutboundResponse
	if err := c.doJSON(ctx, http.MethodPost, "/start-outbound-calling", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", models.NewServiceError(http.StatusBadGateway, resp.Error, "outbound call failed")
	}
	return resp.SessionID, nil
}

type startInboundRequest struct {
	FileIDs []string `json:"file_ids"`
}

type startInboundResponse struct {
	Success     bool   `json:"success"`
	AssistantID string `json:"assistant_id"`
	Error       string `json:"error"`
}

// StartInboundAgent activates the inbound assistant on the backend.
func (c *Client) StartInboundAgent(ctx context.Context, fileIDs []string) (string, error) {
	if fileIDs == nil {
		fileIDs = []string{}
	}

	var resp startInboundResponse
	if err := c.doJSON(ctx, http.MethodPost, "/start-inbound-agent", startInboundRequest{FileIDs: fileIDs}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", models.NewServiceError(http.StatusBadGateway, resp.Error, "inbound agent activation failed")
	}
	return resp.AssistantID, nil
}

type successResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StopCalling tells the backend to stop the active calling agent.
func (c *Client) StopCalling(ctx context.Context) error {
	var resp successResponse
	if err := c.doJSON(ctx, http.MethodPost, "/stop-calling", struct{}{}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return models.NewServiceError(http.StatusBadGateway, resp.Error, "stop calling failed")
	}
	return nil
}

type toolsResponse struct {
	Success bool          `json:"success"`
	Tools   []models.Tool `json:"tools"`
	Error   string        `json:"error"`
}

// AvailableTools fetches the server-held capability list.
func (c *Client) AvailableTools(ctx context.Context) ([]models.Tool, error) {
	var resp toolsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/available-tools", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, models.NewServiceError(http.StatusBadGateway, resp.Error, "failed to fetch available tools")
	}
	return resp.Tools, nil
}

type updateToolStatusRequest struct {
	ToolID  string `json:"tool_id"`
	Enabled bool   `json:"enabled"`
}

// UpdateToolStatus persists a tool's enabled flag on the backend. The caller
// must not flip any local state until this returns nil.
func (c *Client) UpdateToolStatus(ctx context.Context, toolID string, enabled bool) error {
	var resp successResponse
	if err := c.doJSON(ctx, http.MethodPut, "/tool-status/update", updateToolStatusRequest{ToolID: toolID, Enabled: enabled}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return models.NewServiceError(http.StatusBadGateway, resp.Error, "tool status update failed")
	}
	return nil
}

type agentConfigurationResponse struct {
	Success     bool   `json:"success"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Error       string `json:"error"`
}

// AgentConfiguration fetches the AI agent's name and description.
func (c *Client) AgentConfiguration(ctx context.Context) (name, description string, err error) {
	var resp agentConfigurationResponse
	if err := c.doJSON(ctx, http.MethodGet, "/agent-configuration", nil, &resp); err != nil {
		return "", "", err
	}
	if !resp.Success {
		return "", "", models.NewServiceError(http.StatusBadGateway, resp.Error, "failed to fetch agent configuration")
	}
	return resp.Name, resp.Description, nil
}

type agentConfigurationUpdate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateAgentConfiguration updates the agent's name and/or description and
// returns the configuration the backend confirmed.
func (c *Client) UpdateAgentConfiguration(ctx context.Context, name, description string) (string, string, error) {
	var resp agentConfigurationResponse
	payload := agentConfigurationUpdate{Name: name, Description: description}
	if err := c.doJSON(ctx, http.MethodPut, "/agent-configuration", payload, &resp); err != nil {
		return "", "", err
	}
	if !resp.Success {
		return "", "", models.NewServiceError(http.StatusBadGateway, resp.Error, "agent configuration update failed")
	}
	return resp.Name, resp.Description, nil
}

// Forward proxies an arbitrary request to the backend and returns the raw
// response. It is used for the auxiliary CRUD surfaces (human experts,
// documents, databases) that the gateway does not interpret.
func (c *Client) Forward(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy request for %s: %w", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend at %s: %w", path, err)
	}
	return resp, nil
}
