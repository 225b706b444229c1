// Package tui is the terminal front end of the admin dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/entity"
	"github.com/jekabolt/helpdesk/internal/render"
)

// noticeFadeDelay is how long a notice stays in the status line.
const noticeFadeDelay = 3 * time.Second

// Controller is the part of *dashboard.Controller the model drives.
type Controller interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetStatusFilter(ctx context.Context, status string) error
	SetPriorityFilter(ctx context.Context, priority string) error
	ClearFilters(ctx context.Context) error
	Search(ctx context.Context, text string)
	FlushSearch() bool
	ViewTicket(id int) (entity.Ticket, error)
	CloseDetail()
	UpdateStatus(ctx context.Context, id int, status entity.TicketStatus) error
	State() dashboard.State
}

var _ Controller = (*dashboard.Controller)(nil)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusDetail
)

type Model struct {
	ctx   context.Context
	ctrl  Controller
	keys  KeyMap
	theme Theme

	focus  focus
	search textinput.Model

	stats      entity.Stats
	tickets    []entity.Ticket
	filters    entity.TicketFilters
	tableError string
	loaded     bool
	cursor     int

	detail       *entity.Ticket
	detailStatus int

	notice    *dashboard.Notice
	noticeSeq int

	width  int
	height int
}

func NewModel(ctx context.Context, ctrl Controller) Model {
	search := textinput.New()
	search.Placeholder = "id, category or subject"
	search.Prompt = "/ "
	search.CharLimit = 100

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		search:  search,
		filters: ctrl.State().Filters,
	}
}

// Init loads the dashboard.
func (m Model) Init() tea.Cmd {
	return m.run(func() { _ = m.ctrl.Load(m.ctx) })
}

// run executes a controller call off the event loop. Its results come back
// through the ProgramView, so the command itself produces no message.
func (m Model) run(f func()) tea.Cmd {
	return func() tea.Msg {
		f()
		return nil
	}
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch m.focus {
		case focusSearch:
			return m.handleSearchKeys(message)
		case focusDetail:
			return m.handleDetailKeys(message)
		}
		return m.handleListKeys(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height

	case statsMsg:
		m.stats = message.stats

	case ticketsMsg:
		m.tickets = make([]entity.Ticket, 0, len(message.tickets))
		for _, t := range message.tickets {
			m.tickets = append(m.tickets, render.ForTerminal(t))
		}
		m.tableError = ""
		m.loaded = true
		m.filters = m.ctrl.State().Filters
		if m.cursor >= len(m.tickets) {
			m.cursor = max(len(m.tickets)-1, 0)
		}

	case ticketsErrorMsg:
		m.tableError = message.msg
		m.loaded = true

	case noticeMsg:
		n := message.notice
		n.Message = render.StripControl(n.Message)
		m.notice = &n
		m.noticeSeq++
		seq := m.noticeSeq
		return m, tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
			return noticeFadeMsg{seq: seq}
		})

	case noticeFadeMsg:
		if message.seq == m.noticeSeq {
			m.notice = nil
		}

	case detailMsg:
		t := render.ForTerminal(message.ticket)
		m.detail = &t
		m.detailStatus = statusIndex(t.Status)
		m.focus = focusDetail

	case closeDetailMsg:
		m.detail = nil
		if m.focus == focusDetail {
			m.focus = focusList
		}
	}
	return m, nil
}

func (m Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(message, m.keys.Down):
		if m.cursor < len(m.tickets)-1 {
			m.cursor++
		}

	case key.Matches(message, m.keys.Open):
		if m.cursor < len(m.tickets) {
			id := m.tickets[m.cursor].ID
			return m, m.run(func() { _, _ = m.ctrl.ViewTicket(id) })
		}

	case key.Matches(message, m.keys.StatusFilter):
		m.filters.Status = entity.NextStatusFilter(m.filters.Status)
		status := m.filters.Status
		return m, m.run(func() { _ = m.ctrl.SetStatusFilter(m.ctx, status) })

	case key.Matches(message, m.keys.PriorityFilter):
		m.filters.Priority = entity.NextPriorityFilter(m.filters.Priority)
		priority := m.filters.Priority
		return m, m.run(func() { _ = m.ctrl.SetPriorityFilter(m.ctx, priority) })

	case key.Matches(message, m.keys.Search):
		m.focus = focusSearch
		m.search.SetValue(m.filters.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(message, m.keys.ClearFilters):
		m.filters = entity.DefaultFilters()
		m.search.SetValue("")
		return m, m.run(func() { _ = m.ctrl.ClearFilters(m.ctx) })

	case key.Matches(message, m.keys.Refresh):
		return m, m.run(func() { _ = m.ctrl.Refresh(m.ctx) })
	}
	return m, nil
}

// handleSearchKeys routes typing into the search box. Every edit goes to
// the controller, which debounces the fetch. Enter runs a pending search
// at once.
func (m Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		m.focus = focusList
		m.search.Blur()
		return m, m.run(func() { m.ctrl.FlushSearch() })
	case tea.KeyEsc:
		m.focus = focusList
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(message)
	after := m.search.Value()
	if after == before {
		return m, cmd
	}
	m.filters.Search = after
	// Search only schedules the fetch, so it is safe on the event loop.
	m.ctrl.Search(m.ctx, after)
	return m, cmd
}

func (m Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.focus = focusList
		return m, nil
	}
	n := len(entity.TicketStatuses)
	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.PrevStatus):
		m.detailStatus = (m.detailStatus + n - 1) % n

	case key.Matches(message, m.keys.NextStatus):
		m.detailStatus = (m.detailStatus + 1) % n

	case key.Matches(message, m.keys.Open):
		id := m.detail.ID
		status := entity.TicketStatuses[m.detailStatus]
		return m, m.run(func() { _ = m.ctrl.UpdateStatus(m.ctx, id, status) })

	case key.Matches(message, m.keys.Close):
		return m, m.run(m.ctrl.CloseDetail)
	}
	return m, nil
}

func statusIndex(s entity.TicketStatus) int {
	for i, st := range entity.TicketStatuses {
		if st == s {
			return i
		}
	}
	return 0
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")
	if m.detail != nil {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderTable())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground).Render("Helpdesk")
	stat := func(label string, n int, color lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %d", label, n))
	}
	return strings.Join([]string{
		title,
		stat("Total", m.stats.Total, m.theme.NormalText),
		stat("Open", m.stats.Open, m.theme.StatusOpen),
		stat("In Progress", m.stats.InProgress, m.theme.StatusInProgress),
		stat("Resolved", m.stats.Resolved, m.theme.StatusResolved),
	}, "  ")
}

func (m Model) renderFilters() string {
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	line := faint.Render("status: ") + m.filters.Status +
		faint.Render("  priority: ") + m.filters.Priority
	if m.focus == focusSearch {
		return line + "  " + m.search.View()
	}
	if m.filters.Search != "" {
		line += faint.Render("  search: ") + m.filters.Search
	}
	return line
}

func (m Model) renderTable() string {
	if m.tableError != "" {
		return lipgloss.NewStyle().Foreground(m.theme.NoticeError).Render(m.tableError)
	}
	if !m.loaded {
		return lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("Loading tickets...")
	}
	if len(m.tickets) == 0 {
		return render.CountLabel(0) + "\n" + render.EmptyTableMessage
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(render.CountLabel(len(m.tickets))))
	b.WriteString("\n")
	selected := lipgloss.NewStyle().
		Background(m.theme.SelectedBackground).
		Foreground(m.theme.SelectedForeground)
	for i, t := range m.tickets {
		row := fmt.Sprintf("#%-5s %-40s %-8s %-12s %s",
			render.TicketID(t.ID),
			truncate(render.Subject(t), 40),
			m.theme.priorityBadge(render.Priority(t)),
			m.theme.statusBadge(render.Status(t)),
			render.FormatDate(t.CreatedAt),
		)
		if i == m.cursor {
			row = selected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	t := *m.detail
	label := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("#%d %s", t.ID, render.Subject(t))),
		label.Render("Name:       ") + render.UserName(t),
		label.Render("Email:      ") + render.UserEmail(t),
		label.Render("Phone:      ") + render.UserPhone(t),
		label.Render("Department: ") + render.Department(t),
		label.Render("Category:   ") + render.IssueCategory(t),
		label.Render("Priority:   ") + m.theme.priorityBadge(t.Priority),
		label.Render("Status:     ") + m.theme.statusBadge(t.Status),
		label.Render("Created:    ") + render.FormatDateTime(t.CreatedAt),
		label.Render("Updated:    ") + render.FormatDateTime(t.UpdatedAt),
		"",
		t.Description,
	}
	if t.ResolutionNotes != "" {
		lines = append(lines, "", label.Render("Resolution notes:"), t.ResolutionNotes)
	}

	choices := make([]string, 0, len(entity.TicketStatuses))
	for i, s := range entity.TicketStatuses {
		if i == m.detailStatus {
			choices = append(choices, "["+m.theme.statusBadge(s)+"]")
			continue
		}
		choices = append(choices, " "+string(s)+" ")
	}
	lines = append(lines, "", label.Render("Update status: ")+strings.Join(choices, " "))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusLine() string {
	if m.notice != nil {
		color := m.theme.NoticeSuccess
		if m.notice.Kind == dashboard.NoticeError {
			color = m.theme.NoticeError
		}
		return lipgloss.NewStyle().Foreground(color).Render(m.notice.Message)
	}
	bindings := m.keys.listHelp()
	if m.focus == focusDetail {
		bindings = m.keys.detailHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(strings.Join(parts, " • "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
