// Package manifest implements the local application metadata store.
//
// The FileRepository reads a YAML (or JSON) manifest describing installed
// packages and resolves a package name to its version and build number.
// Numeric build numbers are kept as exact decimal text.
package manifest
