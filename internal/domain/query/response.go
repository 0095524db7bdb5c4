package query

import "fmt"

// Outcome discriminates the three possible results of a request.
type Outcome int

const (
	// OutcomeSuccess carries a payload.
	OutcomeSuccess Outcome = iota + 1
	// OutcomeFailure carries a coded failure.
	OutcomeFailure
	// OutcomeUnsupported marks an operation the channel does not implement.
	OutcomeUnsupported
)

const (
	// CodeVersionError is reported when application metadata cannot be read.
	CodeVersionError = "VERSION_ERROR"
	// MessageVersionError is the fixed message paired with CodeVersionError.
	MessageVersionError = "Could not get app version"
)

// String returns a lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Failure is a named, coded error outcome. It has no detail payload.
type Failure struct {
	// Code is a stable machine-readable identifier such as VERSION_ERROR.
	Code string
	// Message is a fixed human-readable description.
	Message string
}

// Response is the result of handling a Request.
// Exactly one of Text and Version is set on success; Failure is set on failure.
type Response struct {
	// Outcome tells which of the remaining fields is meaningful.
	Outcome Outcome
	// Method echoes the requested operation.
	Method string
	// Text is the payload of operations returning a plain string.
	Text string
	// Version is the payload of getAppVersion.
	Version *VersionInfo
	// Failure describes a failed operation.
	Failure *Failure
}

// TextResult builds a successful response with a string payload.
func TextResult(method, text string) *Response {
	return &Response{
		Outcome: OutcomeSuccess,
		Method:  method,
		Text:    text,
	}
}

// VersionResult builds a successful response with a VersionInfo payload.
func VersionResult(method string, info *VersionInfo) *Response {
	return &Response{
		Outcome: OutcomeSuccess,
		Method:  method,
		Version: info.Clone(),
	}
}

// FailureResult builds a failed response.
func FailureResult(method, code, message string) *Response {
	return &Response{
		Outcome: OutcomeFailure,
		Method:  method,
		Failure: &Failure{
			Code:    code,
			Message: message,
		},
	}
}

// VersionErrorResult is the failure returned when app metadata lookup fails.
func VersionErrorResult(method string) *Response {
	return FailureResult(method, CodeVersionError, MessageVersionError)
}

// UnsupportedResult marks the requested operation as not implemented.
func UnsupportedResult(method string) *Response {
	return &Response{
		Outcome: OutcomeUnsupported,
		Method:  method,
	}
}

// IsSuccess reports whether the response carries a payload.
func (r *Response) IsSuccess() bool {
	return r != nil && r.Outcome == OutcomeSuccess
}

// Payload returns the success value in its wire shape:
// a string, a map of strings for VersionInfo, or nil for non-success outcomes.
func (r *Response) Payload() any {
	if !r.IsSuccess() {
		return nil
	}

	if r.Version != nil {
		return r.Version.AsMap()
	}

	return r.Text
}

// String renders the response for CLI output and logs.
func (r *Response) String() string {
	if r == nil {
		return "<nil response>"
	}

	switch r.Outcome {
	case OutcomeSuccess:
		if r.Version != nil {
			return r.Version.String()
		}

		return r.Text
	case OutcomeFailure:
		if r.Failure == nil {
			return "failure"
		}

		return fmt.Sprintf("%s: %s", r.Failure.Code, r.Failure.Message)
	case OutcomeUnsupported:
		return fmt.Sprintf("operation %q is not implemented", r.Method)
	default:
		return r.Outcome.String()
	}
}
