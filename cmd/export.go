package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jekabolt/helpdesk/internal/render"
)

func (cl *cli) exportCmd() *cobra.Command {
	var (
		ff     filterFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard as a static HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}
			renderer, err := render.New()
			if err != nil {
				return err
			}
			ctrl, err := cl.controller(cmd)
			if err != nil {
				return err
			}
			ctrl.SetFilters(filters)
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}

			st := ctrl.State()
			page := render.NewDashboardPage(st.Stats, st.Filters, st.Tickets)
			page.Static = true

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("can't create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := renderer.Render(w, render.PageDashboard, page); err != nil {
				return err
			}
			if output != "" && output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s written to %s\n", render.CountLabel(len(st.Tickets)), output)
			}
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}
