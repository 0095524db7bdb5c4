// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with timeouts and the
// factory that turns configuration into a platform provider.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
