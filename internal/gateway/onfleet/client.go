package onfleet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ContainerType selects which provider container a task moves into.
type ContainerType string

// List of provider container types
const (
	ContainerTeam         ContainerType = "TEAM"
	ContainerWorker       ContainerType = "WORKER"
	ContainerOrganization ContainerType = "ORGANIZATION"
)

// ContainerRef points a task at a provider container.
type ContainerRef struct {
	Type ContainerType `json:"type"`
	ID   string        `json:"id,omitempty"`
}

// TaskSnapshot is the provider's current view of a task, read before
// note/state updates.
type TaskSnapshot struct {
	ID       string `json:"id"`
	ShortID  string `json:"shortId"`
	WorkerID string `json:"worker"`
	Notes    string `json:"notes"`
	State    int    `json:"state"`
}

// Error is a task-routing provider failure. Retryable errors may be
// attempted again by the retrying router or a later assignment pass.
type Error struct {
	Op   string
	Code int
	Body string
}

func (e *Error) Error() string {
	return fmt.Sprintf("onfleet: %s: status %d: %s", e.Op, e.Code, e.Body)
}

// Retryable reports whether the failure is transient.
func (e *Error) Retryable() bool {
	switch e.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// IsRetryable reports whether err is worth another attempt: a transient
// provider status or a network-level failure.
func IsRetryable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// Client is the task-routing provider façade. Container assignment is
// idempotent at the task level: the provider keeps the last write.
type Client struct {
	session *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a provider client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// AssignToTeam moves the task into the team container.
func (c *Client) AssignToTeam(ctx context.Context, taskID, teamID string) error {
	return c.setContainer(ctx, taskID, ContainerRef{Type: ContainerTeam, ID: teamID})
}

// AssignToWorker moves the task into the worker container. The task must
// already belong to the worker's team.
func (c *Client) AssignToWorker(ctx context.Context, taskID, workerID string) error {
	return c.setContainer(ctx, taskID, ContainerRef{Type: ContainerWorker, ID: workerID})
}

// Unassign returns the task to the organization container.
func (c *Client) Unassign(ctx context.Context, taskID string) error {
	return c.setContainer(ctx, taskID, ContainerRef{Type: ContainerOrganization})
}

func (c *Client) setContainer(ctx context.Context, taskID string, ref ContainerRef) error {
	body, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("marshal container ref: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("%s/tasks/%s/container", c.baseURL, taskID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp, err := c.do(req, "set container")
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// TaskParams describes a task to create on the provider.
type TaskParams struct {
	Destination   string         `json:"destination"`
	CompleteAfter int64          `json:"completeAfter,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// CreateTask creates a provider task and returns its snapshot.
func (c *Client) CreateTask(ctx context.Context, p TaskParams) (*TaskSnapshot, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal task params: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req, "create task")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var snap TaskSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode created task: %w", err)
	}
	return &snap, nil
}

// FetchTask reads the provider's current snapshot of a task.
func (c *Client) FetchTask(ctx context.Context, taskID string) (*TaskSnapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("%s/tasks/%s", c.baseURL, taskID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req, "fetch task")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var snap TaskSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode task %s: %w", taskID, err)
	}
	return &snap, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request, op string) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onfleet: %s: %w", op, err)
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &Error{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}
