package versionchecker

import (
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/version-checker/internal/domain/query"
	pb "github.com/oshokin/version-checker/internal/pb/v1"
)

var (
	// errNilResponse is returned when the service produced no response.
	errNilResponse = errors.New("response is not set")
	// errUnexpectedPayload is returned when a reply has an unknown shape.
	errUnexpectedPayload = errors.New("unexpected payload")
)

// Encode converts a response into a reply value or a gRPC status error:
// failures become FailedPrecondition with an ErrorInfo carrying the code,
// unsupported operations become Unimplemented.
func Encode(response *query.Response) (*structpb.Value, error) {
	if response == nil {
		return nil, status.Error(codes.Internal, errNilResponse.Error())
	}

	switch response.Outcome {
	case query.OutcomeSuccess:
		value, err := structpb.NewValue(response.Payload())
		if err != nil {
			return nil, status.Errorf(codes.Internal, "encode payload: %v", err)
		}

		return value, nil
	case query.OutcomeFailure:
		return nil, failureStatus(response.Failure).Err()
	case query.OutcomeUnsupported:
		return nil, status.Errorf(codes.Unimplemented, "operation %q is not implemented", response.Method)
	default:
		return nil, status.Errorf(codes.Internal, "unknown outcome %s", response.Outcome)
	}
}

// failureStatus builds the status for a coded failure.
func failureStatus(failure *query.Failure) *status.Status {
	if failure == nil {
		return status.New(codes.Internal, "failure is not described")
	}

	st := status.New(codes.FailedPrecondition, failure.Message)

	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: failure.Code,
		Domain: pb.ChannelName,
	})
	if err != nil {
		return st
	}

	return detailed
}

// Decode converts an Invoke reply back into a response.
// Transport errors that are not channel outcomes are returned as errors.
func Decode(method string, value *structpb.Value, invokeErr error) (*query.Response, error) {
	if invokeErr != nil {
		return decodeStatus(method, invokeErr)
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return query.TextResult(method, kind.StringValue), nil
	case *structpb.Value_StructValue:
		fields := kind.StructValue.GetFields()

		version, ok := stringField(fields, query.FieldVersion)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not a string", errUnexpectedPayload, query.FieldVersion)
		}

		buildNumber, ok := stringField(fields, query.FieldBuildNumber)
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not a string", errUnexpectedPayload, query.FieldBuildNumber)
		}

		return query.VersionResult(method, &query.VersionInfo{
			Version:     version,
			BuildNumber: buildNumber,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnexpectedPayload, kind)
	}
}

// stringField returns the named field when it is present and holds a string.
func stringField(fields map[string]*structpb.Value, name string) (string, bool) {
	kind, ok := fields[name].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false
	}

	return kind.StringValue, true
}

// decodeStatus maps Unimplemented and coded FailedPrecondition statuses to outcomes.
func decodeStatus(method string, invokeErr error) (*query.Response, error) {
	st, ok := status.FromError(invokeErr)
	if !ok {
		return nil, invokeErr
	}

	switch st.Code() {
	case codes.Unimplemented:
		return query.UnsupportedResult(method), nil
	case codes.FailedPrecondition:
		for _, detail := range st.Details() {
			info, ok := detail.(*errdetails.ErrorInfo)
			if ok && info.GetDomain() == pb.ChannelName {
				return query.FailureResult(method, info.GetReason(), st.Message()), nil
			}
		}
	default:
	}

	return nil, invokeErr
}
