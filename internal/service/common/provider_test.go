//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/version"
)

// TestNewProvider_Manifest resolves the configured package from a manifest.
func TestNewProvider_Manifest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages:\n  app:\n    version: 1.2.3\n    build_number: 45\n"), 0o600))

	p, err := NewProvider(context.Background(), &config.AppConfig{Source: config.SourceManifest, Manifest: path, Package: "app"})
	require.NoError(t, err)

	info, err := p.AppVersionInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "45", info.BuildNumber)
}

// TestNewProvider_Build reports the compiled-in metadata.
func TestNewProvider_Build(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(context.Background(), &config.AppConfig{Source: config.SourceBuild})
	require.NoError(t, err)

	info, err := p.AppVersionInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, version.Version, info.Version)
	require.Equal(t, version.BuildNumber, info.BuildNumber)
}

// TestNewProvider_DefaultPackage falls back to the executable name and fails the lookup cleanly.
func TestNewProvider_DefaultPackage(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(context.Background(), &config.AppConfig{Manifest: filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)

	_, err = p.AppVersionInfo(context.Background())
	require.Error(t, err)
}

// TestNewProvider_UnknownSource rejects unknown sources.
func TestNewProvider_UnknownSource(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(context.Background(), &config.AppConfig{Source: "registry"})
	require.Error(t, err)
}
