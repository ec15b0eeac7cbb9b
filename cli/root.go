// Package cli implements the portfolio command: a developer front-end over
// the sync core and the local mock API.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	apiURL      string
	sessionPath string
	env         map[string]string
}

// Execute runs the root command against the process environment.
func Execute() {
	config.LoadEnv()
	if err := NewRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. env is the configuration source, as
// returned by config.New.
func NewRootCmd(env map[string]string) *cobra.Command {
	opts := &options{env: env}

	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio data sync client",
		Long:          "Inspect and edit portfolio projects, skills and site settings through the REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, config.GetString(env, "LOG_LEVEL", "info"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", "", "API base URL (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.sessionPath, "session", "", "session storage path (overrides SESSION_PATH)")

	rootCmd.AddCommand(
		newMockAPICmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newProjectsCmd(opts),
		newSkillsCmd(opts),
		newSettingsCmd(opts),
		newThemeCmd(opts),
		newSnapshotCmd(opts),
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return rootCmd
}

func setupLogging(cmd *cobra.Command, level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}
