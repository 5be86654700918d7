package trac

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// DefaultTimeout bounds a single burndown request
const DefaultTimeout = 10 * time.Second

// maxBodySize caps the response body; a milestone of several years is well
// below it
const maxBodySize = 8 << 20

// Client fetches burndown payloads from a Trac instance running the burndown
// plugin
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	legacy     bool
}

var _ interfaces.Fetcher = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithLegacyEndpoint switches to the /ajax/burndown/ endpoint of older
// plugin releases
func WithLegacyEndpoint(legacy bool) Option {
	return func(client *Client) {
		client.legacy = legacy
	}
}

// New creates a Client for the Trac instance at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid Trac URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("Trac URL must be http or https", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Endpoint returns the URL requested for req
func (c *Client) Endpoint(req model.FetchRequest) string {
	u := *c.baseURL
	q := url.Values{}

	if c.legacy {
		u.Path += "/ajax/burndown/"
		q.Set("milestone", req.MilestoneID.String())
	} else {
		u.Path += "/milestone/" + req.MilestoneID.String() + "/burndown"
	}

	if req.Metric != "" {
		q.Set("metric", req.Metric.String())
	}
	if req.ApproxStartDate != "" {
		q.Set("approx_start_date", req.ApproxStartDate)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Fetch retrieves the burndown payload of one milestone. Every failure
// resolves to a TransportError outcome; a falsy result resolves to NoData.
func (c *Client) Fetch(ctx context.Context, req model.FetchRequest) model.FetchResult {
	if err := req.Validate(); err != nil {
		return model.TransportFailure(err)
	}

	endpoint := c.Endpoint(req)
	logger := ctxlog.From(ctx).With("endpoint", endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.TransportFailure(goerr.Wrap(err, "failed to build burndown request"))
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("burndown request failed", "error", err)
		return model.TransportFailure(goerr.Wrap(err, "burndown request failed"))
	}
	defer safeClose(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Warn("unexpected burndown response status", "status", resp.StatusCode)
		return model.TransportFailure(goerr.New("unexpected status code",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body))))
	}

	var payload model.BurndownPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		logger.Warn("undecodable burndown response", "error", err)
		return model.TransportFailure(goerr.Wrap(err, "failed to decode burndown response"))
	}

	logger.Debug("burndown fetched",
		"milestone", req.MilestoneID,
		"has_data", payload.HasData(),
		"elapsed", time.Since(start))

	if !payload.HasData() {
		return model.NoDataResult()
	}
	return model.PayloadResult(&payload)
}

func safeClose(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		ctxlog.From(ctx).Debug("failed to close response body", "error", err)
	}
}
