package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Alwanly/vendor-portal-diagnostics/internal/config"
	"github.com/Alwanly/vendor-portal-diagnostics/internal/smoketest"
	"github.com/Alwanly/vendor-portal-diagnostics/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, cfgErr := config.LoadSmokeTestConfig()
	if cfg == nil {
		cfg = &config.SmokeTestConfig{}
	}

	cmd := &cobra.Command{
		Use:          "smoketest",
		Short:        "Fetch service requests for a vendor from a running portal and print the reply",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.NewLoggerFromEnv("smoketest")
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			smoketest.Run(ctx, smoketest.NewClient(cfg, log), cfg.VendorID, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL of the portal (env SMOKE_BASE_URL)")
	cmd.Flags().StringVar(&cfg.VendorID, "vendor-id", cfg.VendorID, "Vendor to query (env SMOKE_VENDOR_ID)")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout (env SMOKE_TIMEOUT)")
	return cmd
}
