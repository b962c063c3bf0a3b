package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/utils/safe"
)

// client implements Service interface
type client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient overrides the HTTP client, mainly for tests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL, mainly for tests
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// New creates a new Zendesk service. Authentication uses the API
// token scheme ("{email}/token" as basic auth user).
func New(subdomain, email, apiToken string, opts ...Option) (Service, error) {
	if subdomain == "" {
		return nil, goerr.New("Zendesk subdomain is required")
	}
	if email == "" {
		return nil, goerr.New("Zendesk email is required")
	}
	if apiToken == "" {
		return nil, goerr.New("Zendesk API token is required")
	}

	c := &client{
		baseURL:    fmt.Sprintf("https://%s.zendesk.com", subdomain),
		email:      email,
		apiToken:   apiToken,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetUser retrieves a user via GET /api/v2/users/{id}.json
func (c *client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/api/v2/users/%d.json", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build user request")
	}
	req.SetBasicAuth(c.email+"/token", c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("Zendesk user request failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("user_id", userID),
			goerr.V("body", string(body)),
		)
	}

	var payload struct {
		User User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user response")
	}

	return &payload.User, nil
}

// AddInternalNote appends a public:false comment via PUT
// /api/v2/tickets/{id}.json
func (c *client) AddInternalNote(ctx context.Context, ticketID int64, body string) error {
	type comment struct {
		Body   string `json:"body"`
		Public bool   `json:"public"`
	}
	payload := map[string]any{
		"ticket": map[string]any{
			"comment": comment{Body: body, Public: false},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal ticket comment")
	}

	url := fmt.Sprintf("%s/api/v2/tickets/%d.json", c.baseURL, ticketID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return goerr.Wrap(err, "failed to build ticket request")
	}
	req.SetBasicAuth(c.email+"/token", c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to update ticket", goerr.V("ticket_id", ticketID))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("Zendesk ticket update failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("ticket_id", ticketID),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
