// Package main provides the CLI entry point for tabdl.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/TadeasHofman/TableauAPI/internal/config"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Exit codes.
const (
	exitError    = 1
	exitNotFound = 2
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = slog.New(slog.DiscardHandler)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, tabdl.ErrNotFound) {
		return exitNotFound
	}
	return exitError
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabdl",
		Short: "Download filtered data from Tableau Server views",
		Long: `tabdl downloads the data behind a Tableau Server view, applying view
filters in batches so large value lists stay within request limits, and saves
the merged result as CSV or Excel.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			var used string
			var err error
			cfg, used, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabdl.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Tableau Server address")
	rootCmd.PersistentFlags().String("token-name", "", "personal access token name")
	rootCmd.PersistentFlags().String("site", "", "site content URL (empty for the default site)")
	rootCmd.PersistentFlags().String("api-version", "", "REST API version (default: ask the server)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (0 for none)")
	rootCmd.PersistentFlags().Int("page-size", config.DefaultPageSize, "workbook listing page size")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newWorkbooksCmd())
	rootCmd.AddCommand(newViewsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tabdl %s\n", Version)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openSession validates the connection settings and prepares a session.
// Nothing is sent to the server until the session is first used.
func openSession() (*tabdl.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cc := cfg.ClientConfig()
	cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	client := tableau.NewClient(cc)
	return tabdl.NewSession(client, client.ServerURL(), logger), nil
}
