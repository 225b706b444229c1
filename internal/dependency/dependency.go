package dependency

import (
	"context"

	"github.com/jekabolt/helpdesk/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Submitter is the public ticket intake endpoint.
	Submitter interface {
		// SubmitTicket creates a ticket and returns the id the backend issued.
		SubmitTicket(ctx context.Context, ticket entity.TicketInsert) (int, error)
	}
	// Tickets is the admin side of the helpdesk API.
	Tickets interface {
		// GetDashboardStats returns the aggregate counters.
		GetDashboardStats(ctx context.Context) (entity.Stats, error)
		// GetTickets returns the full list matching the filter triple.
		GetTickets(ctx context.Context, filters entity.TicketFilters) ([]entity.Ticket, error)
		// UpdateTicketStatus sets the status of one ticket.
		UpdateTicketStatus(ctx context.Context, id int, update entity.StatusUpdate) error
	}
	// Helpdesk is the complete API surface.
	Helpdesk interface {
		Submitter
		Tickets
	}
)
