package domain

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprint hashes a byte slice into a stable 16-character identifier.
// Update mode compares manifest fingerprints between runs to notice newly
// declared dependencies. xxhash is not cryptographic; the hash only needs to
// be stable and cheap.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// FingerprintFile hashes the file at path with the same scheme as Fingerprint.
func FingerprintFile(path string) (string, error) {
	//nolint:gosec // Path is provided by trusted caller
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file for fingerprinting"), "path", path)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
