package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves the two catalog documents. It is implemented by *Client
// and can be faked in tests.
type Fetcher interface {
	FetchHacks(ctx context.Context) ([]Hack, error)
	FetchNames(ctx context.Context) (Names, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrStatus marks a response outside the 2xx range.
var ErrStatus = errors.New("unexpected status")

// Client reads the static catalog site over HTTP.
type Client struct {
	baseURL     *url.URL
	catalogPath string
	namesPath   string
	http        *http.Client
	userAgent   string
}

// ClientOptions configure NewClient. Zero values use the defaults.
type ClientOptions struct {
	BaseURL     string
	CatalogPath string
	NamesPath   string
	Timeout     time.Duration
}

const (
	defaultBaseURL     = "https://hackdex.app/"
	defaultCatalogPath = "db.json"
	defaultNamesPath   = "pretty.json"
	defaultUserAgent   = "hackdex/0.1"
	defaultTimeout     = 15 * time.Second
)

// NewClient builds a Client rooted at opts.BaseURL.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:     base,
		catalogPath: firstNonEmpty(opts.CatalogPath, defaultCatalogPath),
		namesPath:   firstNonEmpty(opts.NamesPath, defaultNamesPath),
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchHacks retrieves and decodes the catalog array.
func (c *Client) FetchHacks(ctx context.Context) ([]Hack, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Hack
	if err := c.get(ctx, c.catalogPath, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchNames retrieves and decodes the display-name table.
func (c *Client) FetchNames(ctx context.Context) (Names, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Names
	if err := c.get(ctx, c.namesPath, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Resolve turns a site-relative reference such as "h/foo" into an absolute URL.
func (c *Client) Resolve(ref string) string {
	rel, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return c.baseURL.ResolveReference(rel).String()
}

// BaseURL returns the normalized site root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("get %s: %w %d %s", path, ErrStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
