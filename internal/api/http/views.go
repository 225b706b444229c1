package httpapi

import (
	"sync"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/entity"
	"github.com/jekabolt/helpdesk/internal/render"
	"github.com/jekabolt/helpdesk/internal/submission"
)

// formView collects what the submission controller shows during one request.
type formView struct {
	page       render.FormPage
	submitting bool
	navigated  string
}

var _ submission.View = (*formView)(nil)

func newFormView(values entity.TicketInsert) *formView {
	page := render.NewFormPage()
	page.Values = values
	return &formView{page: page}
}

func (v *formView) ShowFieldError(field, msg string) { v.page.Errors[field] = msg }
func (v *formView) ClearFieldError(field string)     { delete(v.page.Errors, field) }
func (v *formView) SetSubmitting(submitting bool)    { v.submitting = submitting }
func (v *formView) Navigate(url string)              { v.navigated = url }

func (v *formView) ShowAlert(a submission.Alert) {
	v.page.Alert = &render.Alert{Kind: string(a.Kind), Message: a.Message}
}

// pageView collects what the dashboard controller shows during one request.
// Load reports stats and tickets from separate goroutines.
type pageView struct {
	mu         sync.Mutex
	stats      entity.Stats
	tickets    []entity.Ticket
	ticketsErr string
	notices    []dashboard.Notice
	detail     *entity.Ticket
}

var _ dashboard.View = (*pageView)(nil)

func (v *pageView) ShowStats(stats entity.Stats) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = stats
}

func (v *pageView) ShowTickets(tickets []entity.Ticket) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tickets = tickets
	v.ticketsErr = ""
}

func (v *pageView) ShowTicketsError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tickets = nil
	v.ticketsErr = msg
}

func (v *pageView) Notify(n dashboard.Notice) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, n)
}

func (v *pageView) ShowDetail(t entity.Ticket) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = &t
}

func (v *pageView) CloseDetail() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = nil
}

// takeNotice removes and returns the latest notice.
func (v *pageView) takeNotice() *render.Alert {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.notices) == 0 {
		return nil
	}
	n := v.notices[len(v.notices)-1]
	v.notices = v.notices[:len(v.notices)-1]
	return &render.Alert{Kind: string(n.Kind), Message: n.Message}
}

func (v *pageView) page(filters entity.TicketFilters) render.DashboardPage {
	v.mu.Lock()
	defer v.mu.Unlock()

	p := render.NewDashboardPage(v.stats, filters, v.tickets)
	p.Error = v.ticketsErr
	if len(v.notices) > 0 {
		n := v.notices[len(v.notices)-1]
		p.Notice = &render.Alert{Kind: string(n.Kind), Message: n.Message}
	}
	if v.detail != nil {
		p.Detail = render.NewDetail(*v.detail)
	}
	return p
}
