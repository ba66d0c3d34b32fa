package nexttag

import "fmt"

// Bump selects which component of the current version is incremented when
// deriving the next one. The default policy is a patch bump; minor and
// major bumps are an explicit operator input, never inferred.
type Bump int

const (
	BumpPatch Bump = iota
	BumpMinor
	BumpMajor
)

// ParseBump converts a bump name ("patch", "minor", "major") to a Bump.
func ParseBump(s string) (Bump, error) {
	switch s {
	case "", "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	default:
		return BumpPatch, &ValidationError{Field: "bump", Value: s, Reason: "must be one of patch, minor, major"}
	}
}

func (b Bump) String() string {
	switch b {
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "patch"
	}
}

// Options configures a single resolution run. All fields are plain values;
// the caller validates them once at the boundary (NewScope, ParseBump) and
// the resolver trusts them afterwards.
type Options struct {
	// Tags is the full list of tag names from the repository. The scanner
	// filters it down to the candidates matching Scope.
	Tags []string

	// VersionFile is the path to the baseline version file. Required.
	VersionFile string

	// Scope selects which tag family is resolved and how outputs are
	// decorated. The zero value is the plain, undecorated scope.
	Scope Scope

	// Branch is appended to snapshot versions, slashes replaced by dashes
	// and truncated. Ignored unless Snapshot is set.
	Branch string

	// Snapshot appends the SNAPSHOT qualifier to the next tag.
	Snapshot bool

	// Bump is the increment policy applied to the current version.
	Bump Bump
}

// Validate checks the required inputs. Scope and Bump are validated at
// construction and are not re-checked here.
func (o Options) Validate() error {
	if err := ValidateField(o.VersionFile, "required"); err != nil {
		return &ConfigError{Field: "version file", Reason: "path is required"}
	}
	return nil
}

// Result carries the rendered tag strings for the caller. CurrentTag is the
// highest existing version for the scope (or the baseline when none exists);
// NextTag is the derived next version, snapshot-qualified when requested.
type Result struct {
	CurrentTag string `json:"current_tag"`
	NextTag    string `json:"next_tag"`
}

func (r Result) String() string {
	return fmt.Sprintf("current=%s next=%s", r.CurrentTag, r.NextTag)
}
