// Package dashboard holds the admin dashboard state and the operations on it.
// Rendering is left to a View; the controller only decides what to show.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jekabolt/helpdesk/internal/debounce"
	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
)

const (
	MsgTicketsLoadFailed  = "Failed to load tickets"
	MsgTicketsTableFailed = "Failed to load tickets. Please refresh the page."
	MsgRefreshed          = "Dashboard refreshed"
	MsgTicketNotFound     = "Ticket not found"
	MsgStatusUpdated      = "Status updated successfully"
	MsgStatusFailed       = "Failed to update status"
)

type Config struct {
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message, shown as a toast.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// View receives everything the dashboard shows. Methods may be called from
// any goroutine, never while the controller holds its state lock. Ticket
// lists and list errors arrive in fetch order.
type View interface {
	ShowStats(stats entity.Stats)
	ShowTickets(tickets []entity.Ticket)
	ShowTicketsError(msg string)
	Notify(n Notice)
	ShowDetail(t entity.Ticket)
	CloseDetail()
}

// State is a snapshot of the controller state.
type State struct {
	Filters entity.TicketFilters
	Tickets []entity.Ticket
	Stats   entity.Stats
	// Token identifies the latest list fetch. Responses to older fetches
	// are dropped.
	Token uint64
	// DetailID is the ticket shown in the detail panel, 0 if closed.
	DetailID int
}

type Controller struct {
	api    dependency.Tickets
	view   View
	search *debounce.Debouncer

	// render is held from the token check until the list is shown.
	render sync.Mutex

	mu    sync.Mutex
	state State
}

func New(c *Config, api dependency.Tickets, view View) *Controller {
	return NewWithScheduler(c, api, view, debounce.RealScheduler)
}

// NewWithScheduler is New with an explicit time source for the search debounce.
func NewWithScheduler(c *Config, api dependency.Tickets, view View, s debounce.Scheduler) *Controller {
	return &Controller{
		api:    api,
		view:   view,
		search: debounce.NewWithScheduler(c.SearchDebounce, s),
		state: State{
			Filters: entity.DefaultFilters(),
			Tickets: []entity.Ticket{},
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Tickets = append([]entity.Ticket(nil), c.state.Tickets...)
	return s
}

// Load fetches stats and the ticket list concurrently.
func (c *Controller) Load(ctx context.Context) error {
	// A list failure must not cancel the stats request.
	var g errgroup.Group
	g.Go(func() error {
		c.LoadStats(ctx)
		return nil
	})
	g.Go(func() error {
		return c.LoadTickets(ctx)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	return nil
}

// LoadStats shows the counters. Failures show zeros and are only logged.
func (c *Controller) LoadStats(ctx context.Context) {
	stats, err := c.api.GetDashboardStats(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load dashboard stats",
			slog.String("err", err.Error()),
		)
		stats = entity.Stats{}
	}
	c.mu.Lock()
	c.state.Stats = stats
	c.mu.Unlock()
	c.view.ShowStats(stats)
}

// LoadTickets replaces the snapshot with the list for the current filters.
func (c *Controller) LoadTickets(ctx context.Context) error {
	err := c.fetchTickets(ctx)
	if errors.Is(err, gerr.ErrStaleResponse) {
		return nil
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load tickets",
			slog.String("err", err.Error()),
		)
		c.view.Notify(Notice{Kind: NoticeError, Message: MsgTicketsLoadFailed})
		return fmt.Errorf("load tickets: %w", err)
	}
	return nil
}

// fetchTickets issues one list request under a fresh token and shows the
// result. It returns gerr.ErrStaleResponse if a newer fetch started meanwhile.
func (c *Controller) fetchTickets(ctx context.Context) error {
	c.mu.Lock()
	c.state.Token++
	token := c.state.Token
	filters := c.state.Filters
	c.mu.Unlock()

	tickets, err := c.api.GetTickets(ctx, filters)

	c.render.Lock()
	defer c.render.Unlock()

	c.mu.Lock()
	if token != c.state.Token {
		c.mu.Unlock()
		slog.Default().DebugContext(ctx, "dropping stale ticket list",
			slog.Uint64("token", token),
		)
		return gerr.ErrStaleResponse
	}
	if err != nil {
		c.mu.Unlock()
		c.view.ShowTicketsError(MsgTicketsTableFailed)
		return err
	}
	if tickets == nil {
		tickets = []entity.Ticket{}
	}
	c.state.Tickets = tickets
	c.mu.Unlock()

	c.view.ShowTickets(append([]entity.Ticket(nil), tickets...))
	return nil
}

// SetFilters replaces the filter triple without fetching. A pending search is dropped.
func (c *Controller) SetFilters(f entity.TicketFilters) {
	c.search.Cancel()
	c.mu.Lock()
	c.state.Filters = f.Normalize()
	c.mu.Unlock()
}

// ApplyFilters replaces the whole filter triple and re-fetches.
func (c *Controller) ApplyFilters(ctx context.Context, f entity.TicketFilters) error {
	c.SetFilters(f)
	return c.LoadTickets(ctx)
}

// SetStatusFilter accepts a status or "all".
func (c *Controller) SetStatusFilter(ctx context.Context, status string) error {
	s, err := entity.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	f := c.State().Filters
	f.Status = s
	return c.ApplyFilters(ctx, f)
}

// SetPriorityFilter accepts a priority or "all".
func (c *Controller) SetPriorityFilter(ctx context.Context, priority string) error {
	p, err := entity.ParsePriorityFilter(priority)
	if err != nil {
		return err
	}
	f := c.State().Filters
	f.Priority = p
	return c.ApplyFilters(ctx, f)
}

// ClearFilters resets to {all, all, ""} and re-fetches.
func (c *Controller) ClearFilters(ctx context.Context) error {
	return c.ApplyFilters(ctx, entity.DefaultFilters())
}

// Search records the search text and schedules a fetch after the quiet
// period. Each call restarts the period.
func (c *Controller) Search(ctx context.Context, text string) {
	c.mu.Lock()
	c.state.Filters.Search = text
	c.mu.Unlock()
	c.search.Trigger(func() {
		c.mu.Lock()
		c.state.Filters = c.state.Filters.Normalize()
		c.mu.Unlock()
		_ = c.LoadTickets(ctx)
	})
}

// FlushSearch runs a pending search immediately. It reports whether one was pending.
func (c *Controller) FlushSearch() bool {
	return c.search.Flush()
}

// Refresh reloads everything and confirms with a notice.
func (c *Controller) Refresh(ctx context.Context) error {
	err := c.Load(ctx)
	c.view.Notify(Notice{Kind: NoticeSuccess, Message: MsgRefreshed})
	return err
}

// ViewTicket opens the detail panel from the current snapshot.
func (c *Controller) ViewTicket(id int) (entity.Ticket, error) {
	c.mu.Lock()
	t, ok := entity.FindTicket(c.state.Tickets, id)
	if ok {
		c.state.DetailID = id
	}
	c.mu.Unlock()

	if !ok {
		c.view.Notify(Notice{Kind: NoticeError, Message: MsgTicketNotFound})
		return entity.Ticket{}, fmt.Errorf("%w: %d", gerr.ErrTicketNotFound, id)
	}
	c.view.ShowDetail(t)
	return t, nil
}

// CloseDetail closes the detail panel.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	c.state.DetailID = 0
	c.mu.Unlock()
	c.view.CloseDetail()
}

// UpdateStatus sets the status of ticket id. Resolution notes are always
// sent empty. On failure the detail panel stays open and nothing local changes.
func (c *Controller) UpdateStatus(ctx context.Context, id int, status entity.TicketStatus) error {
	if !validStatus(status) {
		err := fmt.Errorf("%w: %q", gerr.ErrUnknownStatusValue, status)
		c.view.Notify(Notice{Kind: NoticeError, Message: MsgStatusFailed + ": " + err.Error()})
		return err
	}

	err := c.api.UpdateTicketStatus(ctx, id, entity.StatusUpdate{
		Status:          status,
		ResolutionNotes: "",
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't update ticket status",
			slog.Int("ticket_id", id),
			slog.String("status", string(status)),
			slog.String("err", err.Error()),
		)
		c.view.Notify(Notice{Kind: NoticeError, Message: statusFailureMessage(err)})
		return fmt.Errorf("update status: %w", err)
	}

	c.view.Notify(Notice{Kind: NoticeSuccess, Message: MsgStatusUpdated})
	c.CloseDetail()
	return c.Load(ctx)
}

func statusFailureMessage(err error) string {
	if msg, ok := gerr.ServerMessage(err); ok {
		return MsgStatusFailed + ": " + msg
	}
	return MsgStatusFailed
}

func validStatus(s entity.TicketStatus) bool {
	for _, st := range entity.TicketStatuses {
		if st == s {
			return true
		}
	}
	return false
}
