package nexttag

import (
	"strings"

	"github.com/blang/semver"
)

// Candidates filters a raw tag list down to the versions eligible for the
// scope. Snapshot tags and tags that fail the scope's grammar are silently
// skipped: they belong to another scope or are unrelated tags, not faults.
func Candidates(tags []string, scope Scope) []semver.Version {
	out := make([]semver.Version, 0, len(tags))
	for _, tag := range tags {
		if v, ok := candidate(tag, scope); ok {
			out = append(out, v)
		}
	}
	return out
}

// Latest returns the numerically highest candidate for the scope via a
// single linear scan. The second return is false when no tag matches.
func Latest(tags []string, scope Scope) (semver.Version, bool) {
	var best semver.Version
	found := false
	for _, tag := range tags {
		v, ok := candidate(tag, scope)
		if !ok {
			continue
		}
		if !found || v.GT(best) {
			best = v
			found = true
		}
	}
	return best, found
}

func candidate(tag string, scope Scope) (semver.Version, bool) {
	// Snapshot tags never participate in release resolution.
	if strings.Contains(tag, snapshotMarker) {
		return semver.Version{}, false
	}
	rest, ok := scope.Strip(tag)
	if !ok {
		return semver.Version{}, false
	}
	v, err := ParseVersion(rest)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}
