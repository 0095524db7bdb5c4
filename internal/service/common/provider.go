//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/logger"
	"github.com/oshokin/version-checker/internal/platform"
	"github.com/oshokin/version-checker/internal/repository/manifest"
)

// NewProvider builds the host platform provider with the application
// metadata source selected by the configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (*platform.HostProvider, error) {
	switch cfg.Source {
	case config.SourceBuild:
		logger.DebugKV(ctx, "Application metadata source", "source", config.SourceBuild)

		return platform.NewHostProvider(platform.NewBuildSource()), nil
	case config.SourceManifest, "":
		packageName := cfg.Package
		if packageName == "" {
			name, err := platform.CurrentPackageName()
			if err != nil {
				return nil, fmt.Errorf("detect package name: %w", err)
			}

			packageName = name
		}

		manifestPath := cfg.Manifest
		if manifestPath == "" {
			manifestPath = config.DefaultManifestFilename
		}

		repo := manifest.NewFileRepository(manifestPath)
		source := platform.NewManifestSource(repo, packageName)

		logger.DebugKV(
			ctx,
			"Application metadata source",
			"source", config.SourceManifest,
			"package", source.PackageName(),
			"manifest", repo.Path(),
		)

		return platform.NewHostProvider(source), nil
	default:
		return nil, fmt.Errorf("unknown application metadata source %q", cfg.Source)
	}
}
