package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/repository/manifest"
	"github.com/oshokin/version-checker/internal/version"
)

var (
	// ErrNoAppSource is returned when a provider has no application metadata source.
	ErrNoAppSource = errors.New("application metadata source is not configured")
	// ErrNoBuildVersion is returned when the binary was built without version metadata.
	ErrNoBuildVersion = errors.New("build carries no version metadata")
	// errNoProcess is returned when the current process cannot be found.
	errNoProcess = errors.New("current process not found")
)

// ManifestSource looks the application up in the local package manifest.
type ManifestSource struct {
	// repo is the package metadata store.
	repo manifest.Repository
	// packageName identifies the application in the manifest.
	packageName string
}

// NewManifestSource creates a source resolving packageName in repo.
func NewManifestSource(repo manifest.Repository, packageName string) *ManifestSource {
	return &ManifestSource{
		repo:        repo,
		packageName: packageName,
	}
}

// PackageName returns the package the source resolves.
func (s *ManifestSource) PackageName() string {
	return s.packageName
}

// AppVersionInfo resolves the package in the manifest.
func (s *ManifestSource) AppVersionInfo(ctx context.Context) (*query.VersionInfo, error) {
	info, err := s.repo.Lookup(ctx, s.packageName)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", s.packageName, err)
	}

	return info, nil
}

// BuildSource reports the version metadata compiled into the binary.
type BuildSource struct{}

// NewBuildSource creates a source backed by the version package variables.
func NewBuildSource() *BuildSource {
	return new(BuildSource)
}

// AppVersionInfo returns version.Version and version.BuildNumber.
func (*BuildSource) AppVersionInfo(context.Context) (*query.VersionInfo, error) {
	if version.Version == "" || version.BuildNumber == "" {
		return nil, ErrNoBuildVersion
	}

	return &query.VersionInfo{
		Version:     version.Version,
		BuildNumber: version.BuildNumber,
	}, nil
}

// CurrentPackageName returns the executable name of the running process,
// which is how the application is keyed in the manifest.
// The resolved executable path is preferred; the process table is the fallback.
func CurrentPackageName() (string, error) {
	if path, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}

		return packageNameFromPath(path, runtime.GOOS), nil
	}

	process, err := ps.FindProcess(os.Getpid())
	if err != nil {
		return "", fmt.Errorf("find process: %w", err)
	}

	if process == nil {
		return "", errNoProcess
	}

	return packageNameFromPath(process.Executable(), runtime.GOOS), nil
}

// packageNameFromPath strips the directory and, on Windows, the .exe extension.
func packageNameFromPath(path, goos string) string {
	name := filepath.Base(path)
	if goos == "windows" && strings.EqualFold(filepath.Ext(name), ".exe") {
		name = name[:len(name)-len(".exe")]
	}

	return name
}
