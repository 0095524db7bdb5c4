// Package v1 declares the versionchecker.v1.VersionChecker gRPC service.
//
// The channel carries protobuf well-known types only: the request is a
// StringValue holding the operation name and the reply is a Value, so the
// descriptor is declared by hand instead of generated from a .proto file.
package v1
