package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jekabolt/helpdesk/config"
	apiclient "github.com/jekabolt/helpdesk/internal/api/client"
	"github.com/jekabolt/helpdesk/internal/dependency"
	"github.com/jekabolt/helpdesk/log"
)

var version string

// newAPI builds the backend client. Tests swap it for a mock.
var newAPI = func(c *config.Config) (dependency.Helpdesk, error) {
	return apiclient.New(&c.API)
}

type cli struct {
	cfgFile string
	cfg     *config.Config
	closer  io.Closer
}

func newRootCmd() *cobra.Command {
	cl := &cli{}
	rootCmd := &cobra.Command{
		Use:               "helpdesk",
		Short:             "Client for the IT helpdesk ticket service",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cl.setup,
		PersistentPostRun: cl.teardown,
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the helpdesk client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cl.cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(
		versionCmd,
		cl.serveCmd(),
		cl.dashboardCmd(),
		cl.submitCmd(),
		cl.ticketsCmd(),
		cl.statsCmd(),
		cl.exportCmd(),
	)
	return rootCmd
}

// setup loads the config and installs the default logger. The web front logs
// to stdout, one-shot commands to stderr and the terminal dashboard only to
// a file.
func (cl *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cl.cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	cl.cfg = cfg

	var logger *slog.Logger
	switch {
	case cfg.Logger.File != "":
		logger, cl.closer, err = log.New(&cfg.Logger)
		if err != nil {
			return err
		}
	case cmd.Name() == "dashboard":
		logger = log.Discard()
	case cmd.Name() == "serve":
		logger = log.NewWithWriter(&cfg.Logger, os.Stdout)
	default:
		logger = log.NewWithWriter(&cfg.Logger, cmd.ErrOrStderr())
	}
	slog.SetDefault(logger)
	return nil
}

func (cl *cli) teardown(*cobra.Command, []string) {
	if cl.closer != nil {
		_ = cl.closer.Close()
	}
}

func (cl *cli) api() (dependency.Helpdesk, error) {
	api, err := newAPI(cl.cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create helpdesk api client: %w", err)
	}
	return api, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
