package versionchecker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/version-checker/internal/domain/query"
)

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	// responses maps a method name to the canned response.
	responses map[string]*query.Response
}

// Handle returns the canned response or the unsupported outcome.
func (f *fakeService) Handle(_ context.Context, req *query.Request) *query.Response {
	if r, ok := f.responses[req.Method]; ok {
		return r
	}

	return query.UnsupportedResult(req.Method)
}

// newFakeService returns a service answering both channel operations successfully.
func newFakeService() *fakeService {
	return &fakeService{
		responses: map[string]*query.Response{
			query.MethodGetPlatformVersion: query.TextResult(query.MethodGetPlatformVersion, "Linux 6.8"),
			query.MethodGetAppVersion: query.VersionResult(query.MethodGetAppVersion, &query.VersionInfo{
				Version:     "1.2.3",
				BuildNumber: "2147483648",
			}),
		},
	}
}

// TestServer_Invoke_Validation ensures a nil request returns InvalidArgument.
func TestServer_Invoke_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	_, err := s.Invoke(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Invoke_Success checks both payload shapes.
func TestServer_Invoke_Success(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService())

	value, err := s.Invoke(context.Background(), wrapperspb.String(query.MethodGetPlatformVersion))
	require.NoError(t, err)
	require.Equal(t, "Linux 6.8", value.GetStringValue())

	value, err = s.Invoke(context.Background(), wrapperspb.String(query.MethodGetAppVersion))
	require.NoError(t, err)

	fields := value.GetStructValue().GetFields()
	require.Len(t, fields, 2)
	require.Equal(t, "1.2.3", fields["version"].GetStringValue())
	require.Equal(t, "2147483648", fields["buildNumber"].GetStringValue())
}

// TestServer_Invoke_Outcomes verifies failure and unsupported statuses and their decoding.
func TestServer_Invoke_Outcomes(t *testing.T) {
	t.Parallel()

	service := newFakeService()
	service.responses[query.MethodGetAppVersion] = query.VersionErrorResult(query.MethodGetAppVersion)
	s := NewServer(service)

	value, err := s.Invoke(context.Background(), wrapperspb.String(query.MethodGetAppVersion))
	require.Nil(t, value)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	decoded, err := Decode(query.MethodGetAppVersion, value, err)
	require.NoError(t, err)
	require.Equal(t, query.VersionErrorResult(query.MethodGetAppVersion), decoded)

	value, err = s.Invoke(context.Background(), wrapperspb.String("foo"))
	require.Equal(t, codes.Unimplemented, status.Code(err))

	decoded, err = Decode("foo", value, err)
	require.NoError(t, err)
	require.Equal(t, query.OutcomeUnsupported, decoded.Outcome)
}

// TestDecode_RoundTrip ensures success responses survive Encode and Decode unchanged.
func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for method, want := range newFakeService().responses {
		value, err := Encode(want)
		require.NoError(t, err)

		got, err := Decode(method, value, nil)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// TestDecode_TransportErrors keeps non-channel errors as errors.
func TestDecode_TransportErrors(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")

	_, err := Decode(query.MethodGetAppVersion, nil, plain)
	require.ErrorIs(t, err, plain)

	_, err = Decode(query.MethodGetAppVersion, nil, status.Error(codes.Unavailable, "down"))
	require.Equal(t, codes.Unavailable, status.Code(err))

	// FailedPrecondition without channel details is not a channel failure.
	_, err = Decode(query.MethodGetAppVersion, nil, status.Error(codes.FailedPrecondition, "other"))
	require.Error(t, err)

	_, err = Decode(query.MethodGetAppVersion, structpb.NewNumberValue(1), nil)
	require.ErrorIs(t, err, errUnexpectedPayload)
}

// TestEncode_Nil reports an internal error for a missing response.
func TestEncode_Nil(t *testing.T) {
	t.Parallel()

	_, err := Encode(nil)
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestDecode_MalformedVersionStruct rejects version structs with missing or non-string fields.
func TestDecode_MalformedVersionStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]*structpb.Value
	}{
		{
			name:   "empty struct",
			fields: map[string]*structpb.Value{},
		},
		{
			name: "missing build number",
			fields: map[string]*structpb.Value{
				query.FieldVersion: structpb.NewStringValue("1.2.3"),
			},
		},
		{
			name: "numeric build number",
			fields: map[string]*structpb.Value{
				query.FieldVersion:     structpb.NewStringValue("1.2.3"),
				query.FieldBuildNumber: structpb.NewNumberValue(45),
			},
		},
		{
			name: "null version",
			fields: map[string]*structpb.Value{
				query.FieldVersion:     structpb.NewNullValue(),
				query.FieldBuildNumber: structpb.NewStringValue("45"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value := structpb.NewStructValue(&structpb.Struct{Fields: tt.fields})

			response, err := Decode(query.MethodGetAppVersion, value, nil)
			require.ErrorIs(t, err, errUnexpectedPayload)
			require.Nil(t, response)
		})
	}
}
