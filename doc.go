// Package nexttag computes the next semantic version tag for a repository
// or for a module inside a monorepo.
//
// Given the repository's existing tags, a baseline version file, and an
// optional scope (prefix, suffix, or module name), it selects the highest
// matching version and derives the next one: a patch bump by default, a
// minor or major bump when explicitly requested, or the baseline itself
// when no tag matches the scope yet. Snapshot resolution appends a
// branch-derived qualifier for ephemeral builds and never interferes with
// release numbering.
//
// The package is a pure computation over a tag list and a file read; it
// never creates tags or writes repository state. Tag creation and release
// publishing are the caller's job.
package nexttag
