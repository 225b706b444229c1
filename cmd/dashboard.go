package main

import (
	"github.com/spf13/cobra"

	"github.com/jekabolt/helpdesk/internal/tui"
)

func (cl *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the admin dashboard in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := cl.api()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), &cl.cfg.Dashboard, api)
		},
	}
}
