package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"encore.dev/beta/errs"
)

const (
	// defaultEndpoint is the compute API URL template. The two verbs are the
	// region abbreviation and the account number, in that order.
	defaultEndpoint = "https://%s.servers.api.rackspacecloud.com/v2/%s"

	defaultTimeout = 30 * time.Second

	authTokenHeader = "X-Auth-Token"
)

// Server is a raw compute API server record. Only the fields the reconciler
// cares about are decoded; the provider sends many more.
type Server struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	VMState   string    `json:"OS-EXT-STS:vm_state"`
	Created   time.Time `json:"created"`
	HostID    string    `json:"hostId"`
	Flavor    Flavor    `json:"flavor"`
	Addresses Addresses `json:"addresses"`
}

type Flavor struct {
	ID string `json:"id"`
}

type Addresses struct {
	Public  []Address `json:"public"`
	Private []Address `json:"private"`
}

type Address struct {
	Version int    `json:"version"`
	Addr    string `json:"addr"`
}

// FetchError reports an unusable upstream response: transport failure,
// non-success status, or a body that does not decode. Callers must not treat
// any partial data as valid when one is returned.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream fetch failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream fetch failed: %s", e.Message)
}

// API is the compute-listing surface the business layer depends on.
type API interface {
	ListServers(ctx context.Context, token, region, accountNumber string) ([]Server, error)
	GetServer(ctx context.Context, token, region, accountNumber, serverID string) (*Server, error)
}

// Client issues authenticated calls against the compute API. It performs no
// retries; retry policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEndpoint overrides the URL template. Tests point this at httptest servers.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   defaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListServers fetches the detail listing of every server on the account.
func (c *Client) ListServers(ctx context.Context, token, region, accountNumber string) ([]Server, error) {
	if err := checkCallArgs(token, region); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(c.endpoint, region, accountNumber) + "/servers/detail"
	body, err := c.get(ctx, url, token)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Servers []Server `json:"servers"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("decode server listing: %v", err)}
	}
	return payload.Servers, nil
}

// GetServer fetches one server's detail record. A malformed server identifier
// yields an empty or undecodable body from the provider, which surfaces as a
// FetchError like any other bad response.
func (c *Client) GetServer(ctx context.Context, token, region, accountNumber, serverID string) (*Server, error) {
	if err := checkCallArgs(token, region); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(c.endpoint, region, accountNumber) + "/servers/" + serverID
	body, err := c.get(ctx, url, token)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Server *Server `json:"server"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("decode server detail: %v", err)}
	}
	if payload.Server == nil {
		return nil, &FetchError{Message: "empty server detail response"}
	}
	return payload.Server, nil
}

func (c *Client) get(ctx context.Context, url, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	req.Header.Set(authTokenHeader, token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("read response body: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return body, nil
}

func checkCallArgs(token, region string) error {
	if token == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "authentication token is required"}
	}
	if region == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "region is required"}
	}
	return nil
}
