// Package versionquery implements the version-query service.
//
// Service maps an operation name to a platform query and packages the result
// as a three-way query.Response. It holds no mutable state, so a single
// instance may serve concurrent callers.
package versionquery
