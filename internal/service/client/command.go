package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/version-checker/internal/config"
	"github.com/oshokin/version-checker/internal/domain/query"
	"github.com/oshokin/version-checker/internal/logger"
	"github.com/oshokin/version-checker/internal/service/common"
	"github.com/oshokin/version-checker/internal/service/versionquery"
)

// Options configures a single channel invocation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Method is the operation to run.
	Method string
	// Local runs the operation in-process instead of calling the server.
	Local bool
	// JSON prints the outcome as a JSON document.
	JSON bool
	// Out receives the printed outcome; stdout when nil.
	Out io.Writer
	// LogOutput receives log lines; stderr when nil so they never mix with Out.
	LogOutput io.Writer
}

var (
	// ErrFailed is returned when the operation produced a coded failure.
	ErrFailed = errors.New("operation failed")
	// ErrUnsupported is returned when the operation is not implemented by the channel.
	ErrUnsupported = errors.New("operation is not implemented")
)

// handler runs a request either remotely or in-process.
type handler interface {
	Handle(ctx context.Context, req *query.Request) (*query.Response, error)
}

// localHandler adapts the in-process service to the handler interface.
type localHandler struct {
	service *versionquery.Service
}

// Handle runs the request in-process.
func (h localHandler) Handle(ctx context.Context, req *query.Request) (*query.Response, error) {
	return h.service.Handle(ctx, req), nil
}

// Run invokes the operation once and prints its outcome.
// Failure and unsupported outcomes are printed and reported as ErrFailed and ErrUnsupported.
func Run(ctx context.Context, opts *Options) error {
	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	ctx = logger.ToContext(ctx, logger.New(nil, logOutput))
	ctx = logger.WithName(ctx, "version-checker")

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	h, closeFn, err := newHandler(ctx, opts)
	if err != nil {
		return err
	}

	defer closeFn()

	response, err := h.Handle(ctx, query.NewRequest(opts.Method))
	if err != nil {
		logger.ErrorKV(ctx, "Invoke failed", "method", opts.Method, "error", err)

		return err
	}

	logger.DebugKV(ctx, "Operation completed", "method", opts.Method, "outcome", response.Outcome.String())

	if err = printResponse(out, response, opts.JSON); err != nil {
		return err
	}

	switch response.Outcome {
	case query.OutcomeSuccess:
		return nil
	case query.OutcomeUnsupported:
		return fmt.Errorf("%w: %q", ErrUnsupported, opts.Method)
	default:
		return ErrFailed
	}
}

// newHandler builds the in-process service or dials the server.
func newHandler(ctx context.Context, opts *Options) (handler, func(), error) {
	cfg, err := loadSettings(opts)
	if err != nil {
		return nil, nil, err
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	if opts.Local {
		provider, err := common.NewProvider(ctx, &cfg.App)
		if err != nil {
			return nil, nil, fmt.Errorf("initialise platform provider: %w", err)
		}

		return localHandler{service: versionquery.New(provider)}, func() {}, nil
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	c, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, nil, err
	}

	logger.DebugKV(ctx, "Connected to version server", "server_address", serverAddress)

	return c, func() { _ = c.Close() }, nil
}

// loadSettings reads the configuration. A missing file is tolerated when the
// caller supplies everything else: a server address, or local mode.
func loadSettings(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err == nil {
		return cfg, nil
	}

	if !errors.Is(err, os.ErrNotExist) || (!opts.Local && opts.ServerAddress == "") {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg = &config.Config{
		ServerAddress: opts.ServerAddress,
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = "127.0.0.1:0"
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// printResponse writes the outcome as plain text or JSON.
func printResponse(w io.Writer, response *query.Response, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, response.String())

		return err
	}

	value, err := jsonValue(response)
	if err != nil {
		return err
	}

	data, err := protojson.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// jsonValue shapes the outcome for JSON output.
func jsonValue(response *query.Response) (*structpb.Value, error) {
	var payload any

	switch response.Outcome {
	case query.OutcomeSuccess:
		payload = response.Payload()
	case query.OutcomeFailure:
		payload = map[string]any{
			"code":    response.Failure.Code,
			"message": response.Failure.Message,
		}
	default:
		payload = map[string]any{
			"notImplemented": response.Method,
		}
	}

	value, err := structpb.NewValue(payload)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	return value, nil
}
