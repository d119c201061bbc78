package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// RootPackage is the framework's own repository, cloned first and
	// installed with the secondary packages.
	RootPackage = "bedrock"

	// RootPackageURL is where the framework repository lives.
	RootPackageURL = "https://github.com/bedrock-fem/bedrock"

	// StrataPackage is the native solver stack. It is built from source with
	// configure/make rather than installed through pip.
	StrataPackage = "strata"

	// Strata4pyPackage is the native extension binding for Strata. Its
	// installer is known to leave shadow copies behind, so it gets the
	// purge-until-gone treatment before every install.
	Strata4pyPackage = "strata4py"
)

// Package describes one source repository discovered during fetching.
type Package struct {
	// Name is derived from the final path segment of the source URL.
	Name string

	// URL is the source location as written in the manifest, without any
	// branch fragment.
	URL string

	// Branch is the branch embedded in the manifest URL, if any. The
	// effective branch also considers overrides; see Config.Branch.
	Branch string
}

// Primary reports whether the package is one of the two build-order and
// rebuild special cases (Strata and its binding).
func (p Package) Primary() bool {
	return p.Name == StrataPackage || p.Name == Strata4pyPackage
}

// ParseSource turns one manifest line into a Package. The name is the final
// path segment with the ".git" suffix and "#branch" fragment stripped.
func ParseSource(line string) (Package, error) {
	src := strings.TrimSpace(line)
	if src == "" {
		return Package{}, zerr.Wrap(ErrMalformedSource, "empty source line")
	}

	url, branch, _ := strings.Cut(src, "#")
	url = strings.TrimSuffix(url, "/")

	seg := url
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		seg = url[i+1:]
	}
	name := strings.TrimSuffix(seg, ".git")
	if name == "" {
		return Package{}, zerr.With(zerr.Wrap(ErrMalformedSource, "no package name in source"), "line", line)
	}

	return Package{Name: name, URL: url, Branch: branch}, nil
}

// Set is an ordered collection of packages accumulated during transitive
// discovery. Each name appears at most once; insertion order is preserved so
// install sequencing stays deterministic.
type Set struct {
	packages []Package
	index    map[string]int
}

// NewSet returns an empty package set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts the package unless one of the same name is already present.
// It reports whether the package was inserted.
func (s *Set) Add(p Package) bool {
	if _, ok := s.index[p.Name]; ok {
		return false
	}
	s.index[p.Name] = len(s.packages)
	s.packages = append(s.packages, p)
	return true
}

// Contains reports whether a package of the given name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns the named package.
func (s *Set) Get(name string) (Package, bool) {
	i, ok := s.index[name]
	if !ok {
		return Package{}, false
	}
	return s.packages[i], true
}

// Len returns the number of packages in the set.
func (s *Set) Len() int {
	return len(s.packages)
}

// All returns the packages in discovery order.
func (s *Set) All() []Package {
	out := make([]Package, len(s.packages))
	copy(out, s.packages)
	return out
}

// InstallOrder returns the packages in install sequence: secondary packages
// in discovery order first, then Strata, then its binding. The two primaries
// come last because the binding must be built against the freshly built
// solver stack, after every library dependency is in place.
func (s *Set) InstallOrder() []Package {
	ordered := make([]Package, 0, len(s.packages))
	var primaries []Package
	for _, p := range s.packages {
		if p.Primary() {
			primaries = append(primaries, p)
			continue
		}
		ordered = append(ordered, p)
	}
	// Strata strictly before strata4py.
	sort.SliceStable(primaries, func(i, j int) bool {
		return primaries[i].Name == StrataPackage && primaries[j].Name != StrataPackage
	})
	return append(ordered, primaries...)
}
