package versionchecker

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/logger"
	pb "github.com/oshokin/version-checker/internal/pb/v1"
)

// Service abstracts the business operation the transport layer depends on.
type Service interface {
	Handle(ctx context.Context, req *query.Request) *query.Response
}

// Server implements the VersionChecker gRPC API.
type Server struct {
	pb.UnimplementedVersionCheckerServer

	// service provides the business logic for channel operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Invoke runs the requested operation and encodes its outcome.
func (s *Server) Invoke(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Value, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = logger.WithKV(ctx, "method", req.GetValue())

	response := s.service.Handle(ctx, query.NewRequest(req.GetValue()))

	logger.DebugKV(
		ctx,
		"Request handled",
		"known", query.IsKnownMethod(req.GetValue()),
		"outcome", response.Outcome.String(),
	)

	return Encode(response)
}
