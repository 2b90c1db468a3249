package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pkt.systems/pslog"
)

// Config controls the backend client.
type Config struct {
	// BaseURL is the backend base location; /upload, /chat and /health are
	// fixed path suffixes under it.
	BaseURL string
	// Timeout bounds each request. Zero disables the bound, which reproduces
	// the original client's indefinite wait on a hung backend.
	Timeout time.Duration
}

// Client wraps the outbound upload and query requests. It issues exactly one
// request per invocation and never retries; serializing concurrent calls is
// the session service's responsibility.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  pslog.Logger
}

// NewClient validates the config and constructs a Client.
func NewClient(cfg Config, logger pslog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("server base_url must include scheme and host (e.g. http://localhost:8000)")
	}
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}, nil
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
