package query

import "fmt"

const (
	// FieldVersion is the wire key of VersionInfo.Version.
	FieldVersion = "version"
	// FieldBuildNumber is the wire key of VersionInfo.BuildNumber.
	FieldBuildNumber = "buildNumber"
)

// VersionInfo describes an installed application.
type VersionInfo struct {
	// Version is the human-readable semantic version.
	Version string
	// BuildNumber is the build identifier, always decimal text for numeric builds.
	BuildNumber string
}

// Clone returns a copy of the version info.
func (v *VersionInfo) Clone() *VersionInfo {
	if v == nil {
		return nil
	}

	cloned := *v

	return &cloned
}

// AsMap returns the wire mapping {version, buildNumber}.
func (v *VersionInfo) AsMap() map[string]any {
	return map[string]any{
		FieldVersion:     v.Version,
		FieldBuildNumber: v.BuildNumber,
	}
}

// String formats the version as "1.2.3 (45)".
func (v *VersionInfo) String() string {
	return fmt.Sprintf("%s (%s)", v.Version, v.BuildNumber)
}
