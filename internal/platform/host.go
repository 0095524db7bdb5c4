package platform

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/oshokin/version-checker/internal/domain/query"
)

// unknownOSVersion is reported when neither the release nor the kernel version is readable.
const unknownOSVersion = "unknown"

// HostProvider reads the OS version from the running host and delegates
// application metadata to an AppSource.
type HostProvider struct {
	// app resolves application version metadata.
	app AppSource
	// osRelease returns the raw OS version; replaced in tests.
	osRelease func(ctx context.Context) string
}

// NewHostProvider creates a provider for the current host backed by the provided app source.
func NewHostProvider(app AppSource) *HostProvider {
	return &HostProvider{
		app:       app,
		osRelease: hostRelease,
	}
}

// OSVersionString returns the platform name followed by the raw OS version.
func (p *HostProvider) OSVersionString(ctx context.Context) string {
	return PlatformName() + " " + p.osRelease(ctx)
}

// AppVersionInfo returns the application version metadata from the configured source.
func (p *HostProvider) AppVersionInfo(ctx context.Context) (*query.VersionInfo, error) {
	if p.app == nil {
		return nil, ErrNoAppSource
	}

	return p.app.AppVersionInfo(ctx)
}

// hostRelease queries the OS release through gopsutil.
// It falls back to the kernel version and then to "unknown" so the result is never empty.
func hostRelease(ctx context.Context) string {
	_, _, release, err := host.PlatformInformationWithContext(ctx)
	if err == nil && strings.TrimSpace(release) != "" {
		return strings.TrimSpace(release)
	}

	kernel, err := host.KernelVersionWithContext(ctx)
	if err == nil && strings.TrimSpace(kernel) != "" {
		return strings.TrimSpace(kernel)
	}

	return unknownOSVersion
}
