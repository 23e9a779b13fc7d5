package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diones-souza/test-snaty/internal/apiclient"
	"github.com/diones-souza/test-snaty/internal/config"
	"github.com/diones-souza/test-snaty/internal/console"
)

// app carries what PersistentPreRunE builds for the subcommands.
type app struct {
	verbose bool
	apiURL  string
	console *console.Console
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dispatchctl",
		Short:         "Terminal dashboard for the dispatch API",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "base URL of the dispatch API (overrides DISPATCH_API_URL)")

	root.AddCommand(
		newDashboardCmd(a),
		newClientsCmd(a),
		newConductorsCmd(a),
		newVehiclesCmd(a),
		newTripsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	level := config.Level(cfg.LogLevel)
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	baseURL := cfg.APIURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}
	client, err := apiclient.New(baseURL,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	a.console = console.New(client, cmd.OutOrStdout(), logger)
	return nil
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show counters and charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.console.Dashboard(cmd.Context())
		},
	}
}

// parseIDs reads positional record ids.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
