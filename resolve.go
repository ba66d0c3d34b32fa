package nexttag

import "strings"

// snapshotSeedVersion is the numeric seed for a snapshot when no release
// tag exists yet for the scope.
const snapshotSeedVersion = "0.0.1"

// maxBranchQualifierLen bounds the branch token inside snapshot tags.
const maxBranchQualifierLen = 20

// Resolve computes the current and next tags for the given options.
//
// When no tag matches the scope, the baseline version seeds both: the first
// release of a scope uses the version file content as-is. Otherwise the next
// version is the highest candidate incremented per the bump policy, unless
// the operator has raised the version file past every existing tag, in which
// case the baseline itself becomes the next version.
func Resolve(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	baseline, err := ReadBaseline(opts.VersionFile)
	if err != nil {
		return nil, err
	}

	current, found := Latest(opts.Tags, opts.Scope)
	next := baseline
	switch {
	case !found:
		current = baseline
	case baseline.GT(current):
		// Operator bumped the version file: seed the new version family.
	default:
		next = bumpVersion(current, opts.Bump)
	}

	res := &Result{
		CurrentTag: opts.Scope.Decorate(current.String()),
		NextTag:    opts.Scope.Decorate(next.String()),
	}

	if opts.Snapshot {
		seed := next
		if !found {
			seed, _ = ParseVersion(snapshotSeedVersion)
		}
		res.NextTag = snapshotTag(opts.Scope.Decorate(seed.String()), opts.Branch)
	}

	return res, nil
}

// snapshotTag appends the branch qualifier and the SNAPSHOT marker to a
// decorated tag. Branch separators are flattened to dashes and the token is
// truncated so snapshot tags stay bounded.
func snapshotTag(decorated, branch string) string {
	if branch != "" {
		branch = strings.ReplaceAll(branch, "/", tagSeparator)
		if len(branch) > maxBranchQualifierLen {
			branch = branch[:maxBranchQualifierLen]
		}
		decorated += tagSeparator + branch
	}
	return decorated + tagSeparator + snapshotMarker
}
