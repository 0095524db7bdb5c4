// Package versionchecker implements the gRPC transport for the version channel.
//
// It adapts query.Response values to protobuf messages and gRPC statuses and
// exposes a server that calls into a provided business-service interface.
// Decode turns a reply back into the three-way response on the client side.
package versionchecker
