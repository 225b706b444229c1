package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/jekabolt/helpdesk/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbacks(t *testing.T) {
	var empty entity.Ticket
	assert.Equal(t, "N/A", TicketID(empty.ID))
	assert.Equal(t, "Unknown", UserName(empty))
	assert.Equal(t, "No email", UserEmail(empty))
	assert.Equal(t, "N/A", IssueCategory(empty))
	assert.Equal(t, "No subject", Subject(empty))
	assert.Equal(t, "N/A", UserPhone(empty))
	assert.Equal(t, "N/A", Department(empty))
	assert.Equal(t, entity.PriorityMedium, Priority(empty))
	assert.Equal(t, entity.StatusOpen, Status(empty))

	full := entity.Ticket{ID: 12, Subject: "Printer jam", Priority: entity.PriorityLow, Status: entity.StatusResolved}
	assert.Equal(t, "12", TicketID(full.ID))
	assert.Equal(t, "Printer jam", Subject(full))
	assert.Equal(t, entity.PriorityLow, Priority(full))
	assert.Equal(t, entity.StatusResolved, Status(full))
}

func TestBadgeClasses(t *testing.T) {
	assert.Equal(t, "badge-priority-high", PriorityClass(entity.PriorityHigh))
	assert.Equal(t, "badge-priority-medium", PriorityClass(entity.PriorityMedium))
	assert.Equal(t, "badge-priority-low", PriorityClass(entity.PriorityLow))
	assert.Equal(t, "", PriorityClass("Urgent"))

	assert.Equal(t, "badge-status-open", StatusClass(entity.StatusOpen))
	assert.Equal(t, "badge-status-progress", StatusClass(entity.StatusInProgress))
	assert.Equal(t, "badge-status-resolved", StatusClass(entity.StatusResolved))
	assert.Equal(t, "", StatusClass("Closed"))

	assert.Equal(t, `<span class="badge badge-priority-high">High</span>`, Badge(PriorityClass(entity.PriorityHigh), "High"))
	assert.Equal(t, `<span class="badge">&lt;b&gt;</span>`, Badge("", "<b>"))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", EscapeHTML("<script>alert(1)</script>"))
	assert.Equal(t, "Tom &amp; &#34;Jerry&#34; &#39;x&#39;", EscapeHTML(`Tom & "Jerry" 'x'`))
	assert.Equal(t, "", EscapeHTML(""))
}

func TestFormatDates(t *testing.T) {
	ts := entity.NewTimestamp(time.Date(2024, time.November, 5, 14, 7, 0, 0, time.Local))
	assert.Equal(t, "5 Nov 2024", FormatDate(ts))
	assert.Equal(t, "02:07 pm", FormatTime(ts))
	assert.Equal(t, "5 Nov 2024 at 02:07 pm", FormatDateTime(ts))

	morning := entity.NewTimestamp(time.Date(2024, time.January, 15, 9, 30, 0, 0, time.Local))
	assert.Equal(t, "09:30 am", FormatTime(morning))

	assert.Equal(t, "N/A", FormatDateTime(entity.Timestamp{}))
}

func TestFormatDate_MissingIsNow(t *testing.T) {
	fixed := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.Local)
	old := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = old })

	assert.Equal(t, "1 Mar 2025", FormatDate(entity.Timestamp{}))
	assert.Equal(t, "08:00 am", FormatTime(entity.Timestamp{}))
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "No tickets found", CountLabel(0))
	assert.Equal(t, "Showing 1 ticket", CountLabel(1))
	assert.Equal(t, "Showing 3 tickets", CountLabel(3))
	assert.Equal(t, "Showing 1,250 tickets", CountLabel(1250))
}

func TestNewRow(t *testing.T) {
	row := NewRow(entity.Ticket{ID: 3, Priority: entity.PriorityHigh})
	assert.Equal(t, "No subject", row.Subject)
	assert.Equal(t, "Unknown", row.UserName)
	assert.Contains(t, string(row.PriorityBadge), "badge-priority-high")
	assert.Contains(t, string(row.StatusBadge), "badge-status-open")
}

func TestRenderDashboard(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	tickets := []entity.Ticket{
		{ID: 1, Subject: "<script>alert(1)</script>", Priority: entity.PriorityHigh, Status: entity.StatusOpen},
		{ID: 2, UserName: "Ravi", Status: entity.StatusInProgress},
	}
	page := NewDashboardPage(entity.Stats{Total: 2, Open: 1, InProgress: 1},
		entity.TicketFilters{Status: "Open", Priority: "High", Search: "vpn"}, tickets)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageDashboard, page))
	out := buf.String()

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, "No subject")
	assert.Contains(t, out, "Showing 2 tickets")
	assert.Contains(t, out, `<span class="badge badge-status-progress">In Progress</span>`)
	assert.Contains(t, out, `/admin/tickets/1?priority=High&amp;search=vpn&amp;status=Open`)
	assert.Contains(t, out, `<option value="Open" selected>Open</option>`)
}

func TestRenderDashboard_EmptyAndError(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageDashboard, NewDashboardPage(entity.Stats{}, entity.DefaultFilters(), nil)))
	assert.Contains(t, buf.String(), EmptyTableMessage)
	assert.Contains(t, buf.String(), NoTicketsLabel)

	page := NewDashboardPage(entity.Stats{}, entity.DefaultFilters(), nil)
	page.Error = "Failed to load tickets. Please refresh the page."
	buf.Reset()
	require.NoError(t, r.Render(&buf, PageDashboard, page))
	assert.Contains(t, buf.String(), page.Error)
	assert.NotContains(t, buf.String(), EmptyTableMessage)
}

func TestRenderDetail(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	tk := entity.Ticket{ID: 7, Subject: "VPN", Status: entity.StatusInProgress, Priority: entity.PriorityLow}
	page := NewDashboardPage(entity.Stats{}, entity.DefaultFilters(), []entity.Ticket{tk})
	page.Detail = NewDetail(tk)
	page.Detail.Notice = &Alert{Kind: "error", Message: "Failed to update status: locked"}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageDashboard, page))
	out := buf.String()
	assert.Contains(t, out, `action="/admin/tickets/7/status"`)
	assert.Contains(t, out, `<option value="In Progress" selected>In Progress</option>`)
	assert.Contains(t, out, "Failed to update status: locked")
	assert.Contains(t, out, "Phone: N/A")
}

func TestRenderFormAndSuccess(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page := NewFormPage()
	page.Values.UserName = `"><img>`
	page.Errors["user_email"] = "Please enter a valid email address"
	page.Alert = &Alert{Kind: "error", Message: "Please fill in all required fields correctly."}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageForm, page))
	out := buf.String()
	assert.NotContains(t, out, `"><img>`)
	assert.Contains(t, out, "Please enter a valid email address")
	assert.Contains(t, out, `<option value="Medium" selected>Medium</option>`)

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageSuccess, SuccessPage{TicketID: "42"}))
	assert.Contains(t, buf.String(), "#42")

	assert.Error(t, r.Render(&buf, Page("missing.gohtml"), nil))
}

func TestStripControl(t *testing.T) {
	assert.Equal(t, "Printer jam", StripControl("Printer\x1b]0;pwned\x07 jam"))
	assert.Equal(t, "ok done", StripControl("ok\x1b[2J\x1b]52;c;aGk=\x07 done"))
	assert.Equal(t, "abc\td\ne", StripControl("a\u0085b\x00c\td\ne"))
	assert.Equal(t, "Café ☕", StripControl("Café ☕"))
}

func TestForTerminal(t *testing.T) {
	in := entity.Ticket{
		ID:              3,
		UserName:        "Ann\x1b[31m Lee",
		Subject:         "VPN\x1b]0;title\x07 down",
		Description:     "line one\n\x1b[2Jline two",
		ResolutionNotes: "fixed\x1b]52;c;aGk=\x07",
		Status:          entity.StatusOpen,
	}
	out := ForTerminal(in)
	assert.Equal(t, "Ann Lee", out.UserName)
	assert.Equal(t, "VPN down", out.Subject)
	assert.Equal(t, "line one\nline two", out.Description)
	assert.Equal(t, "fixed", out.ResolutionNotes)
	assert.Equal(t, entity.StatusOpen, out.Status)
	assert.Equal(t, 3, out.ID)
}
