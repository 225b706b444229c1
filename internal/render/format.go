// Package render turns tickets into display strings and HTML pages.
// Everything here is pure apart from the template execution.
package render

import (
	"html"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jekabolt/helpdesk/internal/entity"
)

const (
	FallbackID       = "N/A"
	FallbackName     = "Unknown"
	FallbackEmail    = "No email"
	FallbackCategory = "N/A"
	FallbackSubject  = "No subject"
	FallbackPhone    = "N/A"
	FallbackDept     = "N/A"

	DateLayout = "2 Jan 2006"
	TimeLayout = "03:04 pm"

	EmptyTableMessage = "No tickets found matching your filters."
	NoTicketsLabel    = "No tickets found"
)

// now is swapped in tests.
var now = time.Now

var printer = message.NewPrinter(language.English)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func TicketID(id int) string {
	if id <= 0 {
		return FallbackID
	}
	return strconv.Itoa(id)
}

func UserName(t entity.Ticket) string      { return orDefault(t.UserName, FallbackName) }
func UserEmail(t entity.Ticket) string     { return orDefault(t.UserEmail, FallbackEmail) }
func UserPhone(t entity.Ticket) string     { return orDefault(t.UserPhone, FallbackPhone) }
func Department(t entity.Ticket) string    { return orDefault(t.Department, FallbackDept) }
func IssueCategory(t entity.Ticket) string { return orDefault(t.IssueCategory, FallbackCategory) }
func Subject(t entity.Ticket) string       { return orDefault(t.Subject, FallbackSubject) }

// Priority defaults to Medium.
func Priority(t entity.Ticket) entity.TicketPriority {
	if t.Priority == "" {
		return entity.PriorityMedium
	}
	return t.Priority
}

// Status defaults to Open.
func Status(t entity.Ticket) entity.TicketStatus {
	if t.Status == "" {
		return entity.StatusOpen
	}
	return t.Status
}

// PriorityClass returns the badge CSS class, or "" for unknown values.
func PriorityClass(p entity.TicketPriority) string {
	switch p {
	case entity.PriorityHigh:
		return "badge-priority-high"
	case entity.PriorityMedium:
		return "badge-priority-medium"
	case entity.PriorityLow:
		return "badge-priority-low"
	}
	return ""
}

// StatusClass returns the badge CSS class, or "" for unknown values.
func StatusClass(s entity.TicketStatus) string {
	switch s {
	case entity.StatusOpen:
		return "badge-status-open"
	case entity.StatusInProgress:
		return "badge-status-progress"
	case entity.StatusResolved:
		return "badge-status-resolved"
	}
	return ""
}

// EscapeHTML escapes & < > " and ' so s can be placed in markup as text.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// Badge is the markup of a status or priority badge.
func Badge(class, label string) string {
	if class == "" {
		return `<span class="badge">` + EscapeHTML(label) + `</span>`
	}
	return `<span class="badge ` + EscapeHTML(class) + `">` + EscapeHTML(label) + `</span>`
}

// createdAt is the table timestamp: a missing value shows the current time.
func createdAt(ts entity.Timestamp) time.Time {
	if ts.IsZero() {
		return now()
	}
	return ts.Local()
}

func FormatDate(ts entity.Timestamp) string {
	return createdAt(ts).Format(DateLayout)
}

func FormatTime(ts entity.Timestamp) string {
	return createdAt(ts).Format(TimeLayout)
}

// FormatDateTime is "<date> at <time>". Missing values render as "N/A".
func FormatDateTime(ts entity.Timestamp) string {
	if ts.IsZero() {
		return FallbackID
	}
	t := ts.Local()
	return t.Format(DateLayout) + " at " + t.Format(TimeLayout)
}

// CountLabel is the line above the ticket table.
func CountLabel(n int) string {
	if n <= 0 {
		return NoTicketsLabel
	}
	if n == 1 {
		return "Showing 1 ticket"
	}
	return printer.Sprintf("Showing %d tickets", n)
}
