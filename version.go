package nexttag

import (
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
)

// ParseVersion parses a strict M.m.p version: three dot-separated,
// non-negative integers with no leading zeros and no pre-release or build
// qualifiers. Scope decorations must be stripped before calling.
func ParseVersion(s string) (semver.Version, error) {
	v, err := semver.Parse(strings.TrimSpace(s))
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}
	if len(v.Pre) > 0 || len(v.Build) > 0 {
		return semver.Version{}, fmt.Errorf("parsing version %q: qualifiers are not allowed", s)
	}
	return v, nil
}

// ReadBaseline reads the baseline version from the version file. The file
// must exist and contain a single M.m.p line; it seeds the first tag for a
// scope and is never written by this package.
func ReadBaseline(path string) (semver.Version, error) {
	if path == "" {
		return semver.Version{}, &ConfigError{Field: "version file", Reason: "path is required"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return semver.Version{}, &ConfigError{Field: "version file", Reason: fmt.Sprintf("cannot read %s: %v", path, err)}
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return semver.Version{}, &ValidationError{Field: "version file", Value: path, Reason: "file is empty"}
	}

	v, err := ParseVersion(content)
	if err != nil {
		return semver.Version{}, &ValidationError{Field: "version file", Value: content, Reason: "content is not a valid M.m.p version"}
	}
	return v, nil
}

// bumpVersion returns the version incremented per the bump policy. Lower
// components reset to zero on minor and major bumps.
func bumpVersion(v semver.Version, b Bump) semver.Version {
	switch b {
	case BumpMajor:
		return semver.Version{Major: v.Major + 1}
	case BumpMinor:
		return semver.Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}
