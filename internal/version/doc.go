// Package version exposes build metadata for the project.
//
// Variables Version, BuildNumber, Commit, and BuildTime are injected at build
// time via Go ldflags and default to sensible values for local builds. The
// "build" application metadata source reports Version and BuildNumber over
// the version channel; Short and Full render them for CLI output and logs.
package version
