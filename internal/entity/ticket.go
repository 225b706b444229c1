package entity

import (
	"net/url"
	"strings"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
)

// TicketStatuses lists statuses in the order the status picker offers them.
var TicketStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

var TicketPriorities = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh}

// FilterAll is the filter value meaning "no constraint".
const FilterAll = "all"

// Ticket is a helpdesk ticket as returned by the backend.
type Ticket struct {
	ID              int            `json:"ticket_id"`
	UserName        string         `json:"user_name"`
	UserEmail       string         `json:"user_email"`
	UserPhone       string         `json:"user_phone"`
	Department      string         `json:"department"`
	IssueCategory   string         `json:"issue_category"`
	Priority        TicketPriority `json:"priority"`
	Subject         string         `json:"subject"`
	Description     string         `json:"description"`
	Status          TicketStatus   `json:"status"`
	ResolutionNotes string         `json:"resolution_notes"`
	CreatedAt       Timestamp      `json:"created_at"`
	UpdatedAt       Timestamp      `json:"updated_at"`
	ResolvedAt      Timestamp      `json:"resolved_at"`
}

// TicketInsert is the fixed-shape record posted by the submission form.
type TicketInsert struct {
	UserName      string         `json:"user_name"`
	UserEmail     string         `json:"user_email"`
	UserPhone     string         `json:"user_phone"`
	Department    string         `json:"department"`
	IssueCategory string         `json:"issue_category"`
	Priority      TicketPriority `json:"priority"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
}

// Trim returns a copy with free-text fields trimmed the way the form collects them.
func (t TicketInsert) Trim() TicketInsert {
	t.UserName = strings.TrimSpace(t.UserName)
	t.UserEmail = strings.TrimSpace(t.UserEmail)
	t.UserPhone = strings.TrimSpace(t.UserPhone)
	t.Department = strings.TrimSpace(t.Department)
	t.IssueCategory = strings.TrimSpace(t.IssueCategory)
	t.Priority = TicketPriority(strings.TrimSpace(string(t.Priority)))
	t.Subject = strings.TrimSpace(t.Subject)
	t.Description = strings.TrimSpace(t.Description)
	return t
}

// StatusUpdate is the body of a status change request.
type StatusUpdate struct {
	Status          TicketStatus `json:"status"`
	ResolutionNotes string       `json:"resolution_notes"`
}

// TicketFilters is the dashboard filter triple. "all" or "" means unfiltered.
type TicketFilters struct {
	Status   string
	Priority string
	Search   string
}

func DefaultFilters() TicketFilters {
	return TicketFilters{
		Status:   FilterAll,
		Priority: FilterAll,
		Search:   "",
	}
}

// Normalize maps empty status and priority to "all" and trims the search text.
func (f TicketFilters) Normalize() TicketFilters {
	if strings.TrimSpace(f.Status) == "" {
		f.Status = FilterAll
	}
	if strings.TrimSpace(f.Priority) == "" {
		f.Priority = FilterAll
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// IsDefault reports whether the filters are unfiltered.
func (f TicketFilters) IsDefault() bool {
	return f.Normalize() == DefaultFilters()
}

// Query always carries all three parameters.
func (f TicketFilters) Query() url.Values {
	f = f.Normalize()
	q := url.Values{}
	q.Set("status", f.Status)
	q.Set("priority", f.Priority)
	q.Set("search", f.Search)
	return q
}

// Stats holds the dashboard counters. Missing keys decode as zero.
type Stats struct {
	Total        int `json:"total"`
	Open         int `json:"open"`
	InProgress   int `json:"in_progress"`
	Resolved     int `json:"resolved"`
	HighPriority int `json:"high_priority"`
}

// FindTicket looks up a ticket by id in a snapshot.
func FindTicket(tickets []Ticket, id int) (Ticket, bool) {
	for _, t := range tickets {
		if t.ID == id {
			return t, true
		}
	}
	return Ticket{}, false
}
