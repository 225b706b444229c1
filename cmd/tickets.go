package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
	"github.com/jekabolt/helpdesk/internal/render"
)

// noticeView prints notices as they arrive. The data itself is read from
// the controller state.
type noticeView struct {
	mu sync.Mutex
	w  io.Writer
}

func (v *noticeView) ShowStats(entity.Stats)      {}
func (v *noticeView) ShowTickets([]entity.Ticket) {}
func (v *noticeView) ShowTicketsError(string)     {}
func (v *noticeView) ShowDetail(entity.Ticket)    {}
func (v *noticeView) CloseDetail()                {}

func (v *noticeView) Notify(n dashboard.Notice) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, render.StripControl(n.Message))
}

func (cl *cli) controller(cmd *cobra.Command) (*dashboard.Controller, error) {
	api, err := cl.api()
	if err != nil {
		return nil, err
	}
	return dashboard.New(&cl.cfg.Dashboard, api, &noticeView{w: cmd.ErrOrStderr()}), nil
}

type filterFlags struct {
	status   string
	priority string
	search   string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", entity.FilterAll, "Open, In Progress, Resolved or all")
	cmd.Flags().StringVar(&f.priority, "priority", entity.FilterAll, "Low, Medium, High or all")
	cmd.Flags().StringVar(&f.search, "search", "", "search by id, category or subject")
}

func (f *filterFlags) filters() (entity.TicketFilters, error) {
	status, err := entity.ParseStatusFilter(f.status)
	if err != nil {
		return entity.TicketFilters{}, err
	}
	priority, err := entity.ParsePriorityFilter(f.priority)
	if err != nil {
		return entity.TicketFilters{}, err
	}
	return entity.TicketFilters{Status: status, Priority: priority, Search: f.search}.Normalize(), nil
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func parseTicketID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", gerr.ErrInvalidTicketID, s)
	}
	return id, nil
}

func (cl *cli) ticketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List, inspect and update tickets",
	}
	cmd.AddCommand(cl.ticketsListCmd(), cl.ticketsShowCmd(), cl.ticketsSetStatusCmd())
	return cmd
}

func (cl *cli) ticketsListCmd() *cobra.Command {
	var (
		ff       filterFlags
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}
			ctrl, err := cl.controller(cmd)
			if err != nil {
				return err
			}
			if err := ctrl.ApplyFilters(cmd.Context(), filters); err != nil {
				return err
			}
			tickets := ctrl.State().Tickets
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), tickets)
			}
			return printTickets(cmd.OutOrStdout(), tickets)
		},
	}
	ff.register(cmd)
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print JSON")
	return cmd
}

func printTickets(w io.Writer, tickets []entity.Ticket) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tCATEGORY\tSUBJECT\tUSER\tCREATED")
	for _, t := range tickets {
		t = render.ForTerminal(t)
		fmt.Fprintf(tw, "#%s\t%s\t%s\t%s\t%s\t%s\t%s %s\n",
			render.TicketID(t.ID),
			render.Status(t),
			render.Priority(t),
			render.IssueCategory(t),
			render.Subject(t),
			render.UserName(t),
			render.FormatDate(t.CreatedAt),
			render.FormatTime(t.CreatedAt),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, render.CountLabel(len(tickets)))
	return err
}

func (cl *cli) ticketsShowCmd() *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			ctrl, err := cl.controller(cmd)
			if err != nil {
				return err
			}
			if err := ctrl.LoadTickets(cmd.Context()); err != nil {
				return err
			}
			t, err := ctrl.ViewTicket(id)
			if err != nil {
				return err
			}
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), t)
			}
			return printTicket(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print JSON")
	return cmd
}

func printTicket(w io.Writer, t entity.Ticket) error {
	t = render.ForTerminal(t)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Ticket ID:\t#%s\n", render.TicketID(t.ID))
	fmt.Fprintf(tw, "Name:\t%s\n", render.UserName(t))
	fmt.Fprintf(tw, "Email:\t%s\n", render.UserEmail(t))
	fmt.Fprintf(tw, "Phone:\t%s\n", render.UserPhone(t))
	fmt.Fprintf(tw, "Department:\t%s\n", render.Department(t))
	fmt.Fprintf(tw, "Category:\t%s\n", render.IssueCategory(t))
	fmt.Fprintf(tw, "Priority:\t%s\n", render.Priority(t))
	fmt.Fprintf(tw, "Status:\t%s\n", render.Status(t))
	fmt.Fprintf(tw, "Created:\t%s\n", render.FormatDateTime(t.CreatedAt))
	fmt.Fprintf(tw, "Last Updated:\t%s\n", render.FormatDateTime(t.UpdatedAt))
	fmt.Fprintf(tw, "Subject:\t%s\n", render.Subject(t))
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", t.Description)
	if t.ResolutionNotes != "" {
		fmt.Fprintf(w, "\nResolution Notes:\n%s\n", t.ResolutionNotes)
	}
	return nil
}

func (cl *cli) ticketsSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change the status of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			status, err := entity.ParseStatus(args[1])
			if err != nil {
				return err
			}
			ctrl, err := cl.controller(cmd)
			if err != nil {
				return err
			}
			return ctrl.UpdateStatus(cmd.Context(), id, status)
		},
	}
}

func (cl *cli) statsCmd() *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := cl.controller(cmd)
			if err != nil {
				return err
			}
			ctrl.LoadStats(cmd.Context())
			stats := ctrl.State().Stats
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Total Tickets:\t%d\n", stats.Total)
			fmt.Fprintf(tw, "Open:\t%d\n", stats.Open)
			fmt.Fprintf(tw, "In Progress:\t%d\n", stats.InProgress)
			fmt.Fprintf(tw, "Resolved:\t%d\n", stats.Resolved)
			fmt.Fprintf(tw, "High Priority:\t%d\n", stats.HighPriority)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print JSON")
	return cmd
}
