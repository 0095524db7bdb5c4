package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/platform"
	"github.com/oshokin/version-checker/internal/service/common"
	"github.com/oshokin/version-checker/internal/service/server"
)

// startGRPC starts a gRPC server with temporary config and the provided app settings.
// Returns a stop function to gracefully shutdown the server.
func startGRPC(t *testing.T, addr string, app config.AppConfig) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			Timeout:       5 * time.Second,
			App:           app,
		}),
	)

	done := make(chan struct{})

	go func() {
		defer close(done)

		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: addr,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Failures surface as dial errors below.
	}()

	return func() {
		cancel()
		<-done
	}
}

// freeAddress reserves a free local port for the test server.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// dialReady connects to addr and waits until the server answers.
func dialReady(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr, common.WithCallTimeout(time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	require.Eventually(t, func() bool {
		_, err := c.Handle(context.Background(), query.NewRequest(query.MethodGetPlatformVersion))

		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	return c
}

// TestGRPC_Roundtrip starts the real server and exercises every outcome of the channel.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	manifestPath := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(
		manifestPath,
		[]byte("packages:\n  test-app:\n    version: 1.2.3\n    build_number: 2147483648\n"),
		0o600,
	))

	addr := freeAddress(t)

	stop := startGRPC(t, addr, config.AppConfig{
		Source:   config.SourceManifest,
		Manifest: manifestPath,
		Package:  "test-app",
	})
	defer stop()

	c := dialReady(t, addr)
	ctx := context.Background()

	// Platform version.
	r, err := c.Handle(ctx, query.NewRequest(query.MethodGetPlatformVersion))
	require.NoError(t, err)
	require.Equal(t, query.OutcomeSuccess, r.Outcome)
	require.True(t, strings.HasPrefix(r.Text, platform.PlatformName()+" "), r.Text)

	// App version, twice.
	for i := 0; i < 2; i++ {
		r, err = c.Handle(ctx, query.NewRequest(query.MethodGetAppVersion))
		require.NoError(t, err)
		require.Equal(t, &query.VersionInfo{Version: "1.2.3", BuildNumber: "2147483648"}, r.Version)
	}

	// Unknown operations.
	for _, method := range []string{"foo", ""} {
		r, err = c.Handle(ctx, query.NewRequest(method))
		require.NoError(t, err)
		require.Equal(t, query.OutcomeUnsupported, r.Outcome, method)
	}

	// Metadata disappears: coded failure.
	require.NoError(t, os.Remove(manifestPath))

	r, err = c.Handle(ctx, query.NewRequest(query.MethodGetAppVersion))
	require.NoError(t, err)
	require.Equal(t, query.OutcomeFailure, r.Outcome)
	require.Equal(t, &query.Failure{Code: "VERSION_ERROR", Message: "Could not get app version"}, r.Failure)
}

// TestGRPC_BuildSource serves compiled-in metadata.
func TestGRPC_BuildSource(t *testing.T) {
	t.Parallel()

	addr := freeAddress(t)

	stop := startGRPC(t, addr, config.AppConfig{Source: config.SourceBuild})
	defer stop()

	c := dialReady(t, addr)

	r, err := c.Handle(context.Background(), query.NewRequest(query.MethodGetAppVersion))
	require.NoError(t, err)
	require.Equal(t, query.OutcomeSuccess, r.Outcome)
	require.NotEmpty(t, r.Version.Version)
	require.NotEmpty(t, r.Version.BuildNumber)
}
