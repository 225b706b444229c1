package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
	"github.com/jekabolt/helpdesk/internal/form"
	"github.com/jekabolt/helpdesk/internal/middleware"
	"github.com/jekabolt/helpdesk/internal/render"
	"github.com/jekabolt/helpdesk/internal/submission"
)

// MsgRateLimited is shown when a client submits too many tickets.
const MsgRateLimited = "Too many tickets submitted. Please try again later."

// RateLimitRemainingHeader carries the submissions left in the current window.
const RateLimitRemainingHeader = "X-RateLimit-Remaining"

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, p render.Page, data any) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, p, data); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't render page",
			slog.String("page", string(p)),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, render.PageForm, render.NewFormPage())
}

func ticketFromForm(v url.Values) entity.TicketInsert {
	return entity.TicketInsert{
		UserName:      v.Get("user_name"),
		UserEmail:     v.Get("user_email"),
		UserPhone:     v.Get("user_phone"),
		Department:    v.Get("department"),
		IssueCategory: v.Get("issue_category"),
		Priority:      entity.TicketPriority(v.Get("priority")),
		Subject:       v.Get("subject"),
		Description:   v.Get("description"),
	}
}

func (s *Server) submitTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "can't parse form", http.StatusBadRequest)
		return
	}
	ticket := ticketFromForm(r.PostForm)
	view := newFormView(ticket.Trim())

	// Only well-formed submissions count against the limit.
	checked := ticket
	if form.ValidateTicketInsert(&checked) == nil && s.limiter != nil {
		ip := middleware.GetClientIP(r.Context())
		err := s.limiter.CheckSupportTicket(ip, checked.UserEmail)
		w.Header().Set(RateLimitRemainingHeader, strconv.Itoa(s.remainingSubmissions(ip, checked.UserEmail)))
		if err != nil {
			slog.Default().WarnContext(r.Context(), "ticket submission limited",
				slog.String("err", err.Error()),
			)
			view.page.Alert = &render.Alert{Kind: string(submission.AlertError), Message: MsgRateLimited}
			s.render(w, r, http.StatusTooManyRequests, render.PageForm, view.page)
			return
		}
	}

	_, err := submission.New(s.api, view).Submit(r.Context(), ticket)
	if err == nil && view.navigated != "" {
		http.Redirect(w, r, view.navigated, http.StatusSeeOther)
		return
	}

	status := http.StatusBadGateway
	var ve *gerr.ValidationError
	if errors.As(err, &ve) {
		status = http.StatusUnprocessableEntity
	}
	s.render(w, r, status, render.PageForm, view.page)
}

// remainingSubmissions is the tighter of the ip and email allowances.
func (s *Server) remainingSubmissions(ip, email string) int {
	byIP, byEmail := s.limiter.Remaining(ip, email)
	if byEmail >= 0 && byEmail < byIP {
		return byEmail
	}
	return byIP
}

func (s *Server) getSuccess(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("ticket_id"))
	if id == "" {
		id = render.FallbackID
	}
	s.render(w, r, http.StatusOK, render.PageSuccess, render.SuccessPage{TicketID: id})
}

// filtersFromValues reads the filter triple from v, with keys carrying prefix.
func filtersFromValues(v url.Values, prefix string) (entity.TicketFilters, error) {
	st, err := entity.ParseStatusFilter(v.Get(prefix + "status"))
	if err != nil {
		return entity.TicketFilters{}, err
	}
	pr, err := entity.ParsePriorityFilter(v.Get(prefix + "priority"))
	if err != nil {
		return entity.TicketFilters{}, err
	}
	return entity.TicketFilters{
		Status:   st,
		Priority: pr,
		Search:   v.Get(prefix + "search"),
	}.Normalize(), nil
}

func ticketIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", gerr.ErrInvalidTicketID, chi.URLParam(r, "id"))
	}
	return id, nil
}

// loadDashboard runs a fresh controller for filters and returns it with its view.
func (s *Server) loadDashboard(r *http.Request, filters entity.TicketFilters) (*dashboard.Controller, *pageView) {
	view := &pageView{}
	ctrl := dashboard.New(s.dc, s.api, view)
	ctrl.SetFilters(filters)
	// Failures are already on the page.
	_ = ctrl.Load(r.Context())
	return ctrl, view
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromValues(r.URL.Query(), "")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_, view := s.loadDashboard(r, filters)
	s.render(w, r, http.StatusOK, render.PageDashboard, view.page(filters))
}

func (s *Server) getTicket(w http.ResponseWriter, r *http.Request) {
	id, err := ticketIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filters, err := filtersFromValues(r.URL.Query(), "")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctrl, view := s.loadDashboard(r, filters)
	status := http.StatusOK
	if _, err := ctrl.ViewTicket(id); err != nil {
		status = http.StatusNotFound
	}
	s.render(w, r, status, render.PageDashboard, view.page(filters))
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := ticketIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "can't parse form", http.StatusBadRequest)
		return
	}
	st, err := entity.ParseStatus(r.PostForm.Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filters, err := filtersFromValues(r.PostForm, "filter_")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := &pageView{}
	ctrl := dashboard.New(s.dc, s.api, view)
	ctrl.SetFilters(filters)
	if err := ctrl.UpdateStatus(r.Context(), id, st); err == nil {
		http.Redirect(w, r, string(render.AdminURL(filters)), http.StatusSeeOther)
		return
	}

	// Re-open the detail with the failure next to the status picker.
	failure := view.takeNotice()
	_ = ctrl.Load(r.Context())
	status := http.StatusBadGateway
	if _, err := ctrl.ViewTicket(id); err != nil {
		status = http.StatusNotFound
	}
	page := view.page(filters)
	if page.Detail != nil {
		page.Detail.Notice = failure
	} else {
		page.Notice = failure
	}
	s.render(w, r, status, render.PageDashboard, page)
}
