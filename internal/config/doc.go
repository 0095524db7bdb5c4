// Package config defines settings used by the binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC address of the version channel, the RPC
// timeout, the log level and the application metadata source.
package config
