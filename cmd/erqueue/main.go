package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/erqueue/internal/config"
	"github.com/ehr/erqueue/internal/console"
	"github.com/ehr/erqueue/internal/domain/intake"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "erqueue",
		Short:        "Emergency room intake and treatment queue",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
		},
	}
	cmd.PersistentFlags().String("log-level", "", "Override LOG_LEVEL (trace, debug, info, warn, error, disabled)")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "erqueue %s\n", version)
			return err
		},
	}
}

func runSession(in io.Reader, out, errOut io.Writer, levelOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if levelOverride != "" {
		cfg.LogLevel = strings.ToLower(levelOverride)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}
	defer closeLog()

	svc := intake.NewService(intake.NewQueue(), logger)
	return console.New(svc, in, out, logger).Run()
}

// newLogger writes to LOG_FILE when set, otherwise to stderr. Stdout belongs
// to the menu.
func newLogger(cfg *config.Config, stderr io.Writer) (zerolog.Logger, func() error, error) {
	var w io.Writer = stderr
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	if cfg.IsDev() {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.LogFile != ""}
	}

	logger := zerolog.New(w).
		Level(cfg.Level()).
		With().
		Timestamp().
		Str("session_id", uuid.NewString()).
		Logger()
	return logger, closeFn, nil
}
