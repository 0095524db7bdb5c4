package versionquery

import (
	"context"

	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/platform"
)

// Service answers version-channel requests using a platform provider.
type Service struct {
	// provider performs the native queries.
	provider platform.InfoProvider
}

// New creates a service backed by the provided platform implementation.
func New(provider platform.InfoProvider) *Service {
	return &Service{
		provider: provider,
	}
}

// Handle runs the requested operation.
// Lookup failures are reported as VERSION_ERROR without retrying;
// unknown operation names yield the unsupported outcome.
func (s *Service) Handle(ctx context.Context, req *query.Request) *query.Response {
	if req == nil {
		return query.UnsupportedResult("")
	}

	switch req.Method {
	case query.MethodGetPlatformVersion:
		return query.TextResult(req.Method, s.provider.OSVersionString(ctx))
	case query.MethodGetAppVersion:
		info, err := s.provider.AppVersionInfo(ctx)
		if err != nil || info == nil {
			return query.VersionErrorResult(req.Method)
		}

		return query.VersionResult(req.Method, info)
	default:
		return query.UnsupportedResult(req.Method)
	}
}
