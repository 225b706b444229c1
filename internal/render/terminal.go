package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/jekabolt/helpdesk/internal/entity"
)

// StripControl removes escape sequences and control characters other than
// newline and tab, so text can be written to a terminal as is.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// ForTerminal returns t with every free-text field passed through StripControl.
func ForTerminal(t entity.Ticket) entity.Ticket {
	t.UserName = StripControl(t.UserName)
	t.UserEmail = StripControl(t.UserEmail)
	t.UserPhone = StripControl(t.UserPhone)
	t.Department = StripControl(t.Department)
	t.IssueCategory = StripControl(t.IssueCategory)
	t.Priority = entity.TicketPriority(StripControl(string(t.Priority)))
	t.Subject = StripControl(t.Subject)
	t.Description = StripControl(t.Description)
	t.Status = entity.TicketStatus(StripControl(string(t.Status)))
	t.ResolutionNotes = StripControl(t.ResolutionNotes)
	return t
}
