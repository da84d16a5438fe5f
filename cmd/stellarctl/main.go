package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/config"
	"stellar-cargo/internal/logging"
)

var (
	cfg        *config.Config
	logger     *zap.Logger
	sessionDir string

	rootCmd = &cobra.Command{
		Use:           "stellarctl",
		Short:         "Operator CLI for the Stellar Cargo station inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			if sessionDir == "" {
				sessionDir = cfg.SessionDir
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
)

func sessions() auth.SessionStore {
	return auth.FileSessionStore{Dir: sessionDir}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&sessionDir, "session-dir", "", "Directory holding the CLI session (defaults to SESSION_DIR)")

	rootCmd.AddCommand(newLoginCmd(), newLogoutCmd(), newWhoamiCmd(), newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
