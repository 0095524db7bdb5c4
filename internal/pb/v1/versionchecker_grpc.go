package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "versionchecker.v1.VersionChecker"
	// InvokeFullMethodName is the full RPC path of Invoke.
	InvokeFullMethodName = "/" + ServiceName + "/Invoke"
	// ChannelName identifies the channel in error details.
	ChannelName = "version_checker"
)

// VersionCheckerClient is the client API for the VersionChecker service.
type VersionCheckerClient interface {
	// Invoke runs the named operation and returns its payload.
	Invoke(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Value, error)
}

// versionCheckerClient is the VersionCheckerClient over a gRPC connection.
type versionCheckerClient struct {
	cc grpc.ClientConnInterface
}

// NewVersionCheckerClient creates a client bound to the provided connection.
//
//nolint:ireturn // Mirrors the generated gRPC client constructors.
func NewVersionCheckerClient(cc grpc.ClientConnInterface) VersionCheckerClient {
	return &versionCheckerClient{cc: cc}
}

// Invoke calls /versionchecker.v1.VersionChecker/Invoke.
func (c *versionCheckerClient) Invoke(
	ctx context.Context,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, InvokeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// VersionCheckerServer is the server API for the VersionChecker service.
type VersionCheckerServer interface {
	// Invoke runs the named operation and returns its payload.
	Invoke(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Value, error)
}

// UnimplementedVersionCheckerServer can be embedded to get Unimplemented replies by default.
type UnimplementedVersionCheckerServer struct{}

// Invoke reports Unimplemented.
func (UnimplementedVersionCheckerServer) Invoke(context.Context, *wrapperspb.StringValue) (*structpb.Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Invoke not implemented")
}

// RegisterVersionCheckerServer registers srv with the gRPC service registrar.
func RegisterVersionCheckerServer(s grpc.ServiceRegistrar, srv VersionCheckerServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// invokeHandler decodes the request and dispatches it through the optional interceptor.
func invokeHandler(
	srv any,
	ctx context.Context, //nolint:revive // Argument order is fixed by grpc.MethodHandler.
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	server, _ := srv.(VersionCheckerServer)
	if interceptor == nil {
		return server.Invoke(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvokeFullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		request, _ := req.(*wrapperspb.StringValue)

		return server.Invoke(ctx, request)
	}

	return interceptor(ctx, in, info, handler)
}

// ServiceDesc is the grpc.ServiceDesc for the VersionChecker service.
//
//nolint:gochecknoglobals // grpc.ServiceRegistrar takes the descriptor by pointer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VersionCheckerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Invoke",
			Handler:    invokeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "versionchecker/v1/versionchecker.proto",
}
