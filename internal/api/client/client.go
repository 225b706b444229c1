// Package apiclient talks to the helpdesk backend's JSON endpoints.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/publicsuffix"

	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
	"github.com/jekabolt/helpdesk/internal/middleware"
)

const (
	submitTicketPath   = "/submit-ticket"
	dashboardStatsPath = "/api/dashboard-stats"
	ticketsPath        = "/api/tickets"

	defaultTimeout           = 10 * time.Second
	defaultSessionCookieName = "session"
	maxResponseBytes         = 10 << 20
)

type Config struct {
	BaseURL           string        `mapstructure:"base_url"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	SessionCookie     string        `mapstructure:"session_cookie"`
	SessionCookieName string        `mapstructure:"session_cookie_name"`
	UserAgent         string        `mapstructure:"user_agent"`
}

// Client implements dependency.Helpdesk over HTTP. Every call is a single
// attempt; retrying is left to the user.
type Client struct {
	c      *Config
	base   *url.URL
	client *http.Client
}

var _ dependency.Helpdesk = (*Client)(nil)

func New(c *Config) (*Client, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, fmt.Errorf("helpdesk api base url is empty")
	}
	base, err := url.Parse(strings.TrimRight(c.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("can't parse base url %q: %w", c.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", c.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("can't create cookie jar: %w", err)
	}
	if c.SessionCookie != "" {
		name := c.SessionCookieName
		if name == "" {
			name = defaultSessionCookieName
		}
		jar.SetCookies(base, []*http.Cookie{{Name: name, Value: c.SessionCookie, Path: "/"}})
	}

	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		c:    c,
		base: base,
		client: &http.Client{
			Timeout:   timeout,
			Jar:       jar,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			// The backend answers an expired admin session with a redirect
			// to its HTML login page; surface that instead of following it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// BaseURL returns the normalized backend address.
func (cl *Client) BaseURL() string {
	return cl.base.String()
}

// envelope is the common part of every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *envelope) env() *envelope { return e }

type response interface {
	env() *envelope
}

type submitResponse struct {
	envelope
	TicketID *int `json:"ticket_id"`
}

type statsResponse struct {
	envelope
	Stats *entity.Stats `json:"stats"`
}

type ticketsResponse struct {
	envelope
	Tickets []entity.Ticket `json:"tickets"`
}

type statusResponse struct {
	envelope
}

func (cl *Client) SubmitTicket(ctx context.Context, ticket entity.TicketInsert) (int, error) {
	var resp submitResponse
	if err := cl.do(ctx, http.MethodPost, submitTicketPath, nil, ticket, &resp); err != nil {
		return 0, fmt.Errorf("can't submit ticket: %w", err)
	}
	if resp.TicketID == nil || *resp.TicketID <= 0 {
		return 0, fmt.Errorf("can't submit ticket: %w: no ticket_id in response", gerr.ErrMalformedResponse)
	}
	return *resp.TicketID, nil
}

func (cl *Client) GetDashboardStats(ctx context.Context) (entity.Stats, error) {
	var resp statsResponse
	if err := cl.do(ctx, http.MethodGet, dashboardStatsPath, nil, nil, &resp); err != nil {
		return entity.Stats{}, fmt.Errorf("can't get dashboard stats: %w", err)
	}
	if resp.Stats == nil {
		return entity.Stats{}, fmt.Errorf("can't get dashboard stats: %w: no stats in response", gerr.ErrMalformedResponse)
	}
	return *resp.Stats, nil
}

func (cl *Client) GetTickets(ctx context.Context, filters entity.TicketFilters) ([]entity.Ticket, error) {
	var resp ticketsResponse
	if err := cl.do(ctx, http.MethodGet, ticketsPath, filters.Query(), nil, &resp); err != nil {
		return nil, fmt.Errorf("can't get tickets: %w", err)
	}
	if resp.Tickets == nil {
		return []entity.Ticket{}, nil
	}
	return resp.Tickets, nil
}

func (cl *Client) UpdateTicketStatus(ctx context.Context, id int, update entity.StatusUpdate) error {
	if id <= 0 {
		return fmt.Errorf("can't update ticket status: %w: %d", gerr.ErrInvalidTicketID, id)
	}
	path := ticketsPath + "/" + strconv.Itoa(id) + "/status"
	var resp statusResponse
	if err := cl.do(ctx, http.MethodPut, path, nil, update, &resp); err != nil {
		return fmt.Errorf("can't update status of ticket %d: %w", id, err)
	}
	return nil
}

// do sends one request and decodes the JSON envelope into out. A response
// with success=false, or a non-2xx status, becomes a *gerr.ServerError.
func (cl *Client) do(ctx context.Context, method, path string, query url.Values, body any, out response) error {
	u := *cl.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	target := u.String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request to %s: %w", method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.c.UserAgent != "" {
		req.Header.Set("User-Agent", cl.c.UserAgent)
	}
	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(middleware.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := cl.client.Do(req)
	if err != nil {
		slog.Default().ErrorContext(ctx, "helpdesk api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("failed to %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	slog.Default().DebugContext(ctx, "helpdesk api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
		slog.String("request_id", requestID),
	)

	if isAuthStatus(resp.StatusCode) {
		return fmt.Errorf("%w (status %d from %s)", gerr.ErrAuthRequired, resp.StatusCode, path)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body from %s: %w", target, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: status %d from %s: %v", gerr.ErrMalformedResponse, resp.StatusCode, path, err)
	}

	env := out.env()
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || !env.Success {
		return &gerr.ServerError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return nil
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized ||
		code == http.StatusForbidden ||
		(code >= 300 && code < 400)
}
