package platform

import (
	"context"

	"github.com/oshokin/version-checker/internal/domain/query"
)

// InfoProvider answers the two native queries served by the channel.
type InfoProvider interface {
	// OSVersionString returns "<PlatformName> <osVersion>". It never fails.
	OSVersionString(ctx context.Context) string
	// AppVersionInfo returns the installed application's version metadata.
	AppVersionInfo(ctx context.Context) (*query.VersionInfo, error)
}

// AppSource resolves application version metadata.
type AppSource interface {
	AppVersionInfo(ctx context.Context) (*query.VersionInfo, error)
}

// PlatformName returns the human-readable name of the build target.
func PlatformName() string {
	return platformName()
}
