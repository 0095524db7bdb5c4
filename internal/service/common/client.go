//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/version-checker/internal/api/grpc/versionchecker"
	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/domain/query"
	pb "github.com/oshokin/version-checker/internal/pb/v1"
)

// Client wraps the gRPC VersionChecker client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the version server.
	conn *grpc.ClientConn
	// api is the VersionChecker client interface.
	api pb.VersionCheckerClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the version server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial version server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewVersionCheckerClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Handle invokes the operation on the server and decodes its outcome.
// Failure and unsupported outcomes are responses, not errors.
// A nil request names no operation and is unsupported without a round trip.
func (c *Client) Handle(ctx context.Context, req *query.Request) (*query.Response, error) {
	if req == nil {
		return query.UnsupportedResult(""), nil
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	value, err := c.api.Invoke(callCtx, wrapperspb.String(req.Method))

	response, err := versionchecker.Decode(req.Method, value, err)
	if err != nil {
		return nil, fmt.Errorf("invoke %q: %w", req.Method, err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
