package nexttag

import "strings"

// tagSeparator joins scope decorations and qualifiers to the numeric version.
const tagSeparator = "-"

// snapshotMarker is the qualifier appended to snapshot tags. It is reserved:
// prefixes and suffixes may not use it, and tags carrying it are never
// release candidates.
const snapshotMarker = "SNAPSHOT"

// ScopeKind enumerates the tag families a resolution run can target.
type ScopeKind int

const (
	// ScopeNone matches plain M.m.p tags.
	ScopeNone ScopeKind = iota
	// ScopePrefix matches "token-M.m.p" tags.
	ScopePrefix
	// ScopeSuffix matches "M.m.p-token" tags.
	ScopeSuffix
	// ScopeModule matches "module-M.m.p" tags for a monorepo module.
	ScopeModule
)

func (k ScopeKind) String() string {
	switch k {
	case ScopePrefix:
		return "prefix"
	case ScopeSuffix:
		return "suffix"
	case ScopeModule:
		return "module"
	default:
		return "plain"
	}
}

// Scope selects which tags are eligible candidates and how output tags are
// decorated. Construct it with NewScope; the zero value is the plain scope.
type Scope struct {
	Kind  ScopeKind
	Token string
}

// NewScope builds the scope for an invocation. At most one of prefix,
// suffix, and module may be set. Stray decoration dashes are stripped
// ("dev-" becomes "dev", "-rc" becomes "rc"), the SNAPSHOT keyword is
// rejected for prefix and suffix, a suffix may not contain the tag
// separator, and module names must pass ValidateModuleName.
func NewScope(prefix, suffix, module string) (Scope, error) {
	set := 0
	for _, v := range []string{prefix, suffix, module} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return Scope{}, &ValidationError{
			Field:  "scope",
			Reason: "only one of prefix, suffix, or module can be specified",
		}
	}

	switch {
	case prefix != "":
		prefix = strings.TrimSuffix(prefix, tagSeparator)
		if strings.EqualFold(prefix, snapshotMarker) {
			return Scope{}, &ValidationError{Field: "prefix", Value: prefix, Reason: "SNAPSHOT is a reserved keyword"}
		}
		return Scope{Kind: ScopePrefix, Token: prefix}, nil

	case suffix != "":
		suffix = strings.TrimPrefix(suffix, tagSeparator)
		if strings.EqualFold(suffix, snapshotMarker) {
			return Scope{}, &ValidationError{Field: "suffix", Value: suffix, Reason: "SNAPSHOT is a reserved keyword"}
		}
		if strings.Contains(suffix, tagSeparator) {
			return Scope{}, &ValidationError{Field: "suffix", Value: suffix, Reason: "cannot contain the tag separator"}
		}
		return Scope{Kind: ScopeSuffix, Token: suffix}, nil

	case module != "":
		if err := ValidateModuleName(module); err != nil {
			return Scope{}, err
		}
		return Scope{Kind: ScopeModule, Token: module}, nil

	default:
		return Scope{}, nil
	}
}

// Strip removes the scope's decoration from a raw tag and returns the
// remaining version text. The second return is false when the tag does not
// belong to this scope.
func (s Scope) Strip(tag string) (string, bool) {
	switch s.Kind {
	case ScopePrefix, ScopeModule:
		return strings.CutPrefix(tag, s.Token+tagSeparator)
	case ScopeSuffix:
		return strings.CutSuffix(tag, tagSeparator+s.Token)
	default:
		return tag, true
	}
}

// Decorate renders a version string as a tag for this scope.
func (s Scope) Decorate(version string) string {
	switch s.Kind {
	case ScopePrefix, ScopeModule:
		return s.Token + tagSeparator + version
	case ScopeSuffix:
		return version + tagSeparator + s.Token
	default:
		return version
	}
}
