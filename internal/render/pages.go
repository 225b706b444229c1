package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path"

	"github.com/jekabolt/helpdesk/internal/entity"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Page string

const (
	PageForm      Page = "form.gohtml"
	PageSuccess   Page = "success.gohtml"
	PageDashboard Page = "dashboard.gohtml"

	baseTemplate = "base.gohtml"
)

// Alert is a page-level message.
type Alert struct {
	Kind    string
	Message string
}

// FormPage is the data of the submission form.
type FormPage struct {
	Values     entity.TicketInsert
	Errors     map[string]string
	Alert      *Alert
	Priorities []entity.TicketPriority
}

// NewFormPage returns an empty form with Medium preselected.
func NewFormPage() FormPage {
	return FormPage{
		Values:     entity.TicketInsert{Priority: entity.PriorityMedium},
		Errors:     map[string]string{},
		Priorities: entity.TicketPriorities,
	}
}

type SuccessPage struct {
	TicketID string
}

// Row is one line of the ticket table.
type Row struct {
	ID            int
	IDLabel       string
	UserName      string
	UserEmail     string
	IssueCategory string
	Subject       string
	PriorityBadge template.HTML
	StatusBadge   template.HTML
	Date          string
	Time          string
}

func NewRow(t entity.Ticket) Row {
	p := Priority(t)
	s := Status(t)
	return Row{
		ID:            t.ID,
		IDLabel:       TicketID(t.ID),
		UserName:      UserName(t),
		UserEmail:     UserEmail(t),
		IssueCategory: IssueCategory(t),
		Subject:       Subject(t),
		PriorityBadge: template.HTML(Badge(PriorityClass(p), string(p))),
		StatusBadge:   template.HTML(Badge(StatusClass(s), string(s))),
		Date:          FormatDate(t.CreatedAt),
		Time:          FormatTime(t.CreatedAt),
	}
}

// Detail is the ticket detail panel.
type Detail struct {
	Ticket        entity.Ticket
	Phone         string
	Department    string
	PriorityBadge template.HTML
	StatusBadge   template.HTML
	Created       string
	Updated       string
	Statuses      []entity.TicketStatus
	Notice        *Alert
}

func NewDetail(t entity.Ticket) *Detail {
	return &Detail{
		Ticket:        t,
		Phone:         UserPhone(t),
		Department:    Department(t),
		PriorityBadge: template.HTML(Badge(PriorityClass(t.Priority), string(t.Priority))),
		StatusBadge:   template.HTML(Badge(StatusClass(t.Status), string(t.Status))),
		Created:       FormatDateTime(t.CreatedAt),
		Updated:       FormatDateTime(t.UpdatedAt),
		Statuses:      entity.TicketStatuses,
	}
}

// DashboardPage is the data of the admin dashboard.
type DashboardPage struct {
	Stats      entity.Stats
	Filters    entity.TicketFilters
	Rows       []Row
	Count      string
	Error      string
	Notice     *Alert
	Detail     *Detail
	Statuses   []entity.TicketStatus
	Priorities []entity.TicketPriority
	// Static pages are exported snapshots without forms.
	Static bool
}

// NewDashboardPage builds the page from a snapshot.
func NewDashboardPage(stats entity.Stats, filters entity.TicketFilters, tickets []entity.Ticket) DashboardPage {
	rows := make([]Row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, NewRow(t))
	}
	return DashboardPage{
		Stats:      stats,
		Filters:    filters.Normalize(),
		Rows:       rows,
		Count:      CountLabel(len(tickets)),
		Statuses:   entity.TicketStatuses,
		Priorities: entity.TicketPriorities,
	}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates map[Page]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[Page]*template.Template)}
	for _, p := range []Page{PageForm, PageSuccess, PageDashboard} {
		tmpl, err := template.New(string(p)).Funcs(funcs).ParseFS(templatesFS,
			path.Join("templates", baseTemplate),
			path.Join("templates", string(p)),
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing template '%s': %w", p, err)
		}
		r.templates[p] = tmpl
	}
	return r, nil
}

// Render writes page p with data to w.
func (r *Renderer) Render(w io.Writer, p Page, data any) error {
	tmpl, ok := r.templates[p]
	if !ok {
		return fmt.Errorf("template not found: %v", p)
	}
	if err := tmpl.ExecuteTemplate(w, baseTemplate, data); err != nil {
		return fmt.Errorf("error executing template %s: %w", p, err)
	}
	return nil
}

var funcs = template.FuncMap{
	"emptyMessage": func() string { return EmptyTableMessage },
	"adminURL":     AdminURL,
	"ticketURL":    TicketURL,
}

// AdminURL is the dashboard address carrying the filters.
func AdminURL(f entity.TicketFilters) template.URL {
	return template.URL("/admin?" + f.Query().Encode())
}

// TicketURL opens the detail panel of ticket id, keeping the filters.
func TicketURL(id int, f entity.TicketFilters) template.URL {
	return template.URL(fmt.Sprintf("/admin/tickets/%d?%s", id, f.Query().Encode()))
}
