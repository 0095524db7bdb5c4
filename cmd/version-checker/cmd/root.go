package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/service/client"
	"github.com/oshokin/version-checker/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// serverAddress overrides server_addr from the configuration file.
	serverAddress string
	// local runs the operation in-process.
	local bool
	// asJSON prints the outcome as JSON.
	asJSON bool

	// rootCmd represents the base command for invoking a channel operation.
	rootCmd = &cobra.Command{
		Use:   "version-checker [operation]",
		Short: "Query the OS or application version.",
		Long: `Invokes an operation on the version channel and prints the outcome.

Operations:
  getPlatformVersion  prints "<PlatformName> <osVersion>" (default)
  getAppVersion       prints the application version and build number

Any other operation name is reported as not implemented.
The operation is sent to the version server from the configuration file unless
--server overrides it, or --local runs it in this process.
The exit status is non-zero when the operation fails or is not implemented.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			method := query.MethodGetPlatformVersion
			if len(args) > 0 {
				method = args[0]
			}

			options := &client.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Method:        method,
				Local:         local,
				JSON:          asJSON,
				Out:           cmd.OutOrStdout(),
				LogOutput:     cmd.ErrOrStderr(),
			}

			return client.Run(ctx, options)
		},
	}
)

// Execute runs the version-checker CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	// Failed or unsupported operations are not usage errors.
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "version server address (overrides config)")
	rootCmd.Flags().BoolVarP(&local, "local", "l", false, "run the operation in-process without a server")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")
}
