package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jekabolt/helpdesk/internal/entity"
	"github.com/jekabolt/helpdesk/internal/form"
	"github.com/jekabolt/helpdesk/internal/render"
	"github.com/jekabolt/helpdesk/internal/submission"
)

// submitView prints what the submission controller shows.
type submitView struct {
	w io.Writer
}

func (v submitView) ShowFieldError(field, msg string) { fmt.Fprintf(v.w, "  %s: %s\n", field, msg) }
func (v submitView) ClearFieldError(string)           {}
func (v submitView) Navigate(string)                  {}

func (v submitView) SetSubmitting(submitting bool) {
	if submitting {
		fmt.Fprintln(v.w, "Submitting...")
	}
}

func (v submitView) ShowAlert(a submission.Alert) {
	fmt.Fprintln(v.w, render.StripControl(a.Message))
}

func (cl *cli) submitCmd() *cobra.Command {
	var (
		ticket   entity.TicketInsert
		priority string
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new support ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := cl.api()
			if err != nil {
				return err
			}
			ticket.Priority = entity.TicketPriority(priority)
			if p, err := entity.ParsePriority(priority); err == nil {
				ticket.Priority = p
			}
			ticket.UserPhone = form.SanitizePhone(ticket.UserPhone)

			id, err := submission.New(api, submitView{w: cmd.ErrOrStderr()}).Submit(cmd.Context(), ticket)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ticket #%d submitted\n", id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ticket.UserName, "name", "", "your full name")
	f.StringVar(&ticket.UserEmail, "email", "", "contact email address")
	f.StringVar(&ticket.UserPhone, "phone", "", "contact phone number")
	f.StringVar(&ticket.Department, "department", "", "your department")
	f.StringVar(&ticket.IssueCategory, "category", "", "issue category")
	f.StringVar(&priority, "priority", string(entity.PriorityMedium), "Low, Medium or High")
	f.StringVar(&ticket.Subject, "subject", "", "short summary")
	f.StringVar(&ticket.Description, "description", "", "what happened")
	return cmd
}
