// Package server runs the version channel as a gRPC server.
//
// Run loads settings, builds the platform provider selected by the
// configuration and serves versionchecker.v1.VersionChecker until the
// context is canceled.
package server
