package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/version-checker/internal/domain/query"
)

// Repository resolves installed package metadata.
type Repository interface {
	Lookup(ctx context.Context, packageName string) (*query.VersionInfo, error)
}

// FileRepository reads package metadata from a manifest file on disk.
// The file is read on every lookup so edits are visible without a restart.
type FileRepository struct {
	// path is the filesystem location of the manifest.
	path string
}

// Document is the on-disk manifest layout.
type Document struct {
	// Packages maps a package name to its metadata.
	Packages map[string]Entry `yaml:"packages"`
}

// Entry is the metadata of a single installed package.
type Entry struct {
	// Version is the semantic version string.
	Version string `yaml:"version"`
	// BuildNumber is the build identifier; integers are accepted and kept as text.
	BuildNumber BuildNumber `yaml:"build_number"`
}

var (
	// ErrNotFound is returned when the manifest or the package entry does not exist.
	ErrNotFound = errors.New("package metadata not found")
	// errMalformedEntry is returned when an entry lacks version or build number.
	errMalformedEntry = errors.New("malformed package entry")
	// errPackageRequired is returned when an empty package name is looked up.
	errPackageRequired = errors.New("package name must be provided")
)

// NewFileRepository creates a repository reading the manifest at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the manifest location.
func (r *FileRepository) Path() string {
	return r.path
}

// Lookup returns the metadata of the named package.
func (r *FileRepository) Lookup(_ context.Context, packageName string) (*query.VersionInfo, error) {
	packageName = strings.TrimSpace(packageName)
	if packageName == "" {
		return nil, errPackageRequired
	}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc Document
	if err = yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	entry, ok := doc.Packages[packageName]
	if !ok {
		return nil, fmt.Errorf("package %q: %w", packageName, ErrNotFound)
	}

	if entry.Version == "" || entry.BuildNumber == "" {
		return nil, fmt.Errorf("package %q: %w", packageName, errMalformedEntry)
	}

	return &query.VersionInfo{
		Version:     entry.Version,
		BuildNumber: string(entry.BuildNumber),
	}, nil
}
