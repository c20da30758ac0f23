package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
)

// Client talks to the remote record store that owns every collection the
// console displays. The console never persists anything itself.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, token string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// ListLeads returns the full collection in store order. Defaults the store
// omits (source, priority) are filled here so every consumer sees complete
// records.
func (c *Client) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	if err := c.get(ctx, "/leads", &leads); err != nil {
		return nil, err
	}
	for i := range leads {
		leads[i].Normalize()
	}
	return leads, nil
}

// CreateLead submits a new prospect. The store assigns identifier and
// timestamps and forces status to new.
func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	payload := createLeadRequest{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		Source:         input.Source,
		Package:        input.Package,
		Message:        input.Message,
		Budget:         input.Budget,
		EstimatedValue: input.EstimatedValue,
		Tags:           input.Tags,
		Priority:       input.Priority,
		NextFollowUp:   input.NextFollowUp,
		Status:         string(entity.StatusNew),
	}

	var lead entity.Lead
	if err := c.send(ctx, http.MethodPost, "/leads", payload, &lead); err != nil {
		return nil, err
	}
	lead.Normalize()
	return &lead, nil
}

// PatchLead sends a partial update. Only the fields set on the patch go on
// the wire.
func (c *Client) PatchLead(ctx context.Context, id int64, patch entity.LeadPatch) error {
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/leads/%d", id), patch, nil)
}

func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/leads/%d", id), nil, nil)
}

func (c *Client) ListClients(ctx context.Context) ([]entity.Client, error) {
	var out []entity.Client
	err := c.get(ctx, "/clients", &out)
	return out, err
}

func (c *Client) ListReferrals(ctx context.Context) ([]entity.Referral, error) {
	var out []entity.Referral
	err := c.get(ctx, "/referrals", &out)
	return out, err
}

func (c *Client) ListSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	var out []entity.Subscriber
	err := c.get(ctx, "/subscribers", &out)
	return out, err
}

func (c *Client) ListAuditChecks(ctx context.Context) ([]entity.AuditCheck, error) {
	var out []entity.AuditCheck
	err := c.get(ctx, "/audit-checks", &out)
	return out, err
}

func (c *Client) ListNotifications(ctx context.Context) ([]entity.Notification, error) {
	var out []entity.Notification
	err := c.get(ctx, "/notifications", &out)
	return out, err
}

func (c *Client) GetStats(ctx context.Context) (*entity.Stats, error) {
	var out entity.Stats
	if err := c.get(ctx, "/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	url := c.baseURL + path

	// 1. Encode the body, if any.
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	// 2. Build the request.
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	// 3. Send it.
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record store %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// 4. Anything outside 2xx is a failure.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Warn("record store rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return fmt.Errorf("record store %s %s: status %d", method, path, resp.StatusCode)
	}

	// 5. Decode when the caller wants a body back.
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "BotPilotConsole/1.0")
}
