package domain

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// ManifestName is the dependency manifest looked up at the root of every
// cloned repository: one source URL per line, blank lines and '#' comments
// ignored.
const ManifestName = "dependencies.txt"

// ParseManifest reads a dependency manifest and returns one Package per
// well-formed line, in file order.
func ParseManifest(r io.Reader) ([]Package, error) {
	var pkgs []Package
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParseSource(line)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, ErrManifestRead.Error())
	}
	return pkgs, nil
}
