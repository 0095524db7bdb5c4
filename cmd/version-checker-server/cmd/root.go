package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/service/server"
	"github.com/oshokin/version-checker/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "version-checker-server [listen-address]",
		Short: "Serve OS and application version queries over gRPC.",
		Long: `Starts the gRPC version channel that answers getPlatformVersion and getAppVersion.

The server listens on the specified address or uses settings from configuration file.
Only the port from server_addr config is used for listening (e.g., :50061).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:50061).
Application version metadata comes from the package manifest or from build metadata,
as selected by app.source in the configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the version-checker-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
