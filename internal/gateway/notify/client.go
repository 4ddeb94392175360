package notify

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

// Offer is the structured content of a driver offer message. Formatting
// into delivery text happens on the provider side.
type Offer struct {
	Phone         string    `json:"to"`
	DriverName    string    `json:"driver_name"`
	AppointmentID int64     `json:"appointment_id"`
	UnitNumber    int       `json:"unit_number"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Address       string    `json:"address"`
}

// PartnerAction is the action-required message sent to a manual-mode
// moving partner instead of a worker offer.
type PartnerAction struct {
	PartnerName   string    `json:"partner_name"`
	AppointmentID int64     `json:"appointment_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Address       string    `json:"address"`
}

// PartnerOutcome tells an auto-mode moving partner how its unit ended up
// after the automatic assignment pass.
type PartnerOutcome struct {
	PartnerName   string `json:"partner_name"`
	AppointmentID int64  `json:"appointment_id"`
	Outcome       string `json:"outcome"`
}

// Client delivers offer messages through the SMS provider.
type Client struct {
	session *http.Client
	baseURL string
	token   string
	from    string
}

// NewClient creates a notification client.
func NewClient(baseURL, token, from string) *Client {
	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		from:    from,
	}
}

// SendOffer delivers a unit offer to the candidate driver.
func (c *Client) SendOffer(ctx context.Context, o Offer) error {
	return c.post(ctx, "/messages", map[string]any{
		"from":  c.from,
		"kind":  "driver_offer",
		"offer": o,
	})
}

// SendPartnerAction delivers an action-required message to the partner.
func (c *Client) SendPartnerAction(ctx context.Context, a PartnerAction) error {
	return c.post(ctx, "/messages", map[string]any{
		"from":   c.from,
		"kind":   "partner_action",
		"action": a,
	})
}

// SendPartnerOutcome reports the unit's final offer outcome to the partner.
func (c *Client) SendPartnerOutcome(ctx context.Context, o PartnerOutcome) error {
	return c.post(ctx, "/messages", map[string]any{
		"from":    c.from,
		"kind":    "partner_outcome",
		"outcome": o,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notify: send: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
