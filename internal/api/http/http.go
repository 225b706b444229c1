// Package httpapi serves the browser front of the helpdesk: the public ticket
// form and the admin dashboard, both rendered on the server.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/internal/ratelimit"
	"github.com/jekabolt/helpdesk/internal/render"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	dc       *dashboard.Config
	api      dependency.Helpdesk
	renderer *render.Renderer
	limiter  *ratelimit.SubmissionLimiter
	done     chan struct{}
}

// New creates a new server
func New(c *Config, dc *dashboard.Config, api dependency.Helpdesk, renderer *render.Renderer, limiter *ratelimit.SubmissionLimiter) *Server {
	return &Server{
		c:        c,
		dc:       dc,
		api:      api,
		renderer: renderer,
		limiter:  limiter,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler is the complete middleware and route stack.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router(), "helpdesk-web")
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", listenerAddr, err)
	}

	s.hs = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "helpdesk web front listening",
			slog.String("addr", "http://"+ln.Addr().String()),
		)
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	if err := s.hs.Shutdown(ctx); err != nil {
		return fmt.Errorf("can't shutdown http server: %w", err)
	}
	return nil
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
