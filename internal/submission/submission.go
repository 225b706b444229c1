// Package submission drives the public ticket form: local validation, a
// single create request and the resulting navigation or alert.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
	"github.com/jekabolt/helpdesk/internal/form"
)

const (
	MsgInvalidForm  = "Please fill in all required fields correctly."
	MsgSubmitFailed = "Failed to submit ticket. Please try again."
	MsgNetworkError = "Network error. Please check your connection and try again."

	successPath = "/success"
)

type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
)

// Alert is a page-level message shown above the form.
type Alert struct {
	Kind    AlertKind
	Message string
}

// View is what the controller drives. Implementations must be safe to call
// from the goroutine running Submit.
type View interface {
	ShowFieldError(field, msg string)
	ClearFieldError(field string)
	SetSubmitting(submitting bool)
	ShowAlert(a Alert)
	Navigate(url string)
}

type Controller struct {
	api  dependency.Submitter
	view View
}

func New(api dependency.Submitter, view View) *Controller {
	return &Controller{
		api:  api,
		view: view,
	}
}

// SuccessURL is the page shown after a ticket has been created.
func SuccessURL(id int) string {
	q := url.Values{}
	q.Set("ticket_id", strconv.Itoa(id))
	return successPath + "?" + q.Encode()
}

// Validate checks one field and updates its inline error. It reports
// whether the value is acceptable.
func (c *Controller) Validate(field, value string) bool {
	if err := form.ValidateField(field, value); err != nil {
		c.view.ShowFieldError(field, err.Error())
		return false
	}
	c.view.ClearFieldError(field)
	return true
}

// Submit validates the whole record and, only if every field passes,
// sends exactly one create request. On success the view is navigated to
// the success page and the new ticket id is returned.
func (c *Controller) Submit(ctx context.Context, ticket entity.TicketInsert) (int, error) {
	err := form.ValidateTicketInsert(&ticket)
	c.showFieldErrors(err)
	if err != nil {
		c.view.ShowAlert(Alert{Kind: AlertError, Message: MsgInvalidForm})
		return 0, err
	}

	c.view.SetSubmitting(true)
	id, err := c.api.SubmitTicket(ctx, ticket)
	if err != nil {
		c.view.SetSubmitting(false)
		msg := alertMessage(err)
		slog.Default().ErrorContext(ctx, "can't submit ticket",
			slog.String("err", err.Error()),
		)
		c.view.ShowAlert(Alert{Kind: AlertError, Message: msg})
		return 0, fmt.Errorf("submit ticket: %w", err)
	}

	slog.Default().InfoContext(ctx, "ticket submitted", slog.Int("ticket_id", id))
	c.view.Navigate(SuccessURL(id))
	return id, nil
}

func (c *Controller) showFieldErrors(err error) {
	var ve *gerr.ValidationError
	if !errors.As(err, &ve) {
		ve = &gerr.ValidationError{}
	}
	for _, f := range form.Fields {
		if msg, ok := ve.Fields[f]; ok {
			c.view.ShowFieldError(f, msg)
			continue
		}
		c.view.ClearFieldError(f)
	}
}

// alertMessage maps a failed create request to the alert text. A body that
// is not JSON is reported like a dropped connection.
func alertMessage(err error) string {
	if msg, ok := gerr.ServerMessage(err); ok {
		return msg
	}
	if gerr.IsTransport(err) || errors.Is(err, gerr.ErrMalformedResponse) {
		return MsgNetworkError
	}
	return MsgSubmitFailed
}
