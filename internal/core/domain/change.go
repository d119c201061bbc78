package domain

// ChangeState classifies a tracked package after an update-mode pull.
type ChangeState string

const (
	// Unchanged means the revision identifier was identical before and after
	// the pull.
	Unchanged ChangeState = "unchanged"
	// Changed means the pull moved the revision identifier.
	Changed ChangeState = "changed"
)

// RebuildPolicy decides whether a package is rebuilt during an update run.
type RebuildPolicy string

const (
	// RebuildAlways rebuilds on every update run regardless of changes.
	// Secondary packages are cheap to reinstall, so they always are.
	RebuildAlways RebuildPolicy = "always"
	// RebuildOnChange rebuilds only when the package changed or a force
	// rebuild was requested. The two primaries carry expensive native builds
	// and are special-cased to this policy.
	RebuildOnChange RebuildPolicy = "on-change"
)

// PolicyFor returns the rebuild policy for the named package.
func PolicyFor(name string) RebuildPolicy {
	switch name {
	case StrataPackage, Strata4pyPackage:
		return RebuildOnChange
	default:
		return RebuildAlways
	}
}

// ShouldRebuild applies the policy to an observed change state and the
// force flag.
func (p RebuildPolicy) ShouldRebuild(state ChangeState, force bool) bool {
	if p == RebuildAlways {
		return true
	}
	return force || state == Changed
}
