package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jekabolt/helpdesk/config"
	apiclient "github.com/jekabolt/helpdesk/internal/api/client"
	httpapi "github.com/jekabolt/helpdesk/internal/api/http"
	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/internal/ratelimit"
	"github.com/jekabolt/helpdesk/internal/render"
	"github.com/jekabolt/helpdesk/internal/telemetry"
)

// App is the web front application
type App struct {
	hs       *httpapi.Server
	api      dependency.Helpdesk
	limiter  *ratelimit.SubmissionLimiter
	shutdown telemetry.ShutdownFunc
	c        *config.Config
	done     chan struct{}
	once     sync.Once
}

// New returns a new instance of App. A nil api is built from the config on Start.
func New(c *config.Config, api dependency.Helpdesk) *App {
	return &App{
		c:    c,
		api:  api,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting helpdesk web front")

	a.shutdown, err = telemetry.Setup(ctx, &a.c.Telemetry)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't set up telemetry", slog.String("err", err.Error()))
		return err
	}

	if a.api == nil {
		cl, err := apiclient.New(&a.c.API)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't create helpdesk api client", slog.String("err", err.Error()))
			return err
		}
		slog.Default().InfoContext(ctx, "using helpdesk api", slog.String("base_url", cl.BaseURL()))
		a.api = cl
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("can't load templates: %w", err)
	}

	a.limiter = ratelimit.NewSubmissionLimiter(&a.c.RateLimit)

	a.hs = httpapi.New(&a.c.HTTP, &a.c.Dashboard, a.api, renderer, a.limiter)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeOnce()
	}()
	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
		<-a.hs.Done()
	}
	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't flush traces", slog.String("err", err.Error()))
		}
	}
	a.closeOnce()
}

func (a *App) closeOnce() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}

// Addr is the address the web front listens on.
func (a *App) Addr() string {
	return fmt.Sprintf("%s:%s", a.c.HTTP.Address, a.c.HTTP.Port)
}
