// Package platform abstracts the native queries behind the version channel.
//
// InfoProvider exposes the OS version string and the application's own
// version metadata. The platform display name is fixed at build time by
// the name_*.go files; the application metadata source is chosen at startup.
package platform
