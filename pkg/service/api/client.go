package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

const (
	// Endpoint paths served by the survey backend
	recordResponsePath     = "/api/recordUserResponse"
	aggregateResponsesPath = "/api/aggregateResponses"

	// responseField is the form field carrying the option id
	responseField = "response"

	// DefaultTimeout bounds a single request
	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20
)

// Option is a functional option for configuring Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// Client implements SurveyAPI over HTTP. The session token is read from
// the state store on every call and sent as the session cookie, the same
// way a browser would attach it.
type Client struct {
	baseURL *url.URL
	store   interfaces.StateStore
	hc      *http.Client
}

var _ interfaces.SurveyAPI = (*Client)(nil)

// New creates a new API client for baseURL
func New(baseURL string, store interfaces.StateStore, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("base URL is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("base URL must be http or https", goerr.V("url", baseURL))
	}
	if u.Host == "" {
		return nil, goerr.New("base URL has no host", goerr.V("url", baseURL))
	}

	c := &Client{
		baseURL: u,
		store:   store,
		hc:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.baseURL.String(), "/") + path
}

// RecordResponse posts one answer. A reply that is not the success
// sentinel is returned as a non-accepted Ack, not as an error.
func (c *Client) RecordResponse(ctx context.Context, option types.OptionID) (*model.Ack, error) {
	form := url.Values{}
	form.Set(responseField, option.String())

	req, err := c.newRequest(ctx, recordResponsePath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record response", goerr.V("option", option))
	}

	ack := model.ParseAck(status, string(body))
	ctxlog.From(ctx).Debug("response recorded",
		"option", option,
		"status", status,
		"accepted", ack.Accepted,
	)
	return &ack, nil
}

// AggregateResponses fetches the per-question counts
func (c *Client) AggregateResponses(ctx context.Context) (model.AggregateResultSet, error) {
	req, err := c.newRequest(ctx, aggregateResponsesPath, http.NoBody)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch aggregate responses")
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, goerr.New("unexpected aggregate status",
			goerr.V("status", status),
			goerr.V("body", truncate(string(body), 256)),
		)
	}

	var results model.AggregateResultSet
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, goerr.Wrap(err, "failed to decode aggregate responses",
			goerr.V("body", truncate(string(body), 256)),
		)
	}
	return results, nil
}

func (c *Client) newRequest(ctx context.Context, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}

	entry, err := c.store.Get(ctx, types.StateKeySessionID)
	switch {
	case err == nil:
		req.AddCookie(&http.Cookie{
			Name:  types.StateKeySessionID.String(),
			Value: entry.Value,
		})
	case errors.Is(err, model.ErrStateNotFound):
		// Sent without a session; the server decides
	default:
		return nil, goerr.Wrap(err, "failed to read session token")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "request failed", goerr.V("url", req.URL.String()))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", req.URL.String()))
	}
	return resp.StatusCode, body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
