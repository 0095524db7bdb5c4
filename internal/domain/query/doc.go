// Package query contains the core domain types of the version-query channel.
//
// It defines Request (the operation to run), VersionInfo (application
// version metadata) and Response, a three-way result that keeps a failed
// operation apart from an operation that does not exist.
package query
