// Package client implements the version-checker command.
//
// Run sends one operation over the version channel, or runs it in-process
// in local mode, prints the outcome and turns non-success outcomes into
// errors so the process exit code reflects them.
package client
