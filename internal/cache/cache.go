// Package cache is the build cache of spec.md's domain stack: it hashes a
// normalized description's text and, on a hit, hands back a previously
// built flavor's Snapshot instead of making the caller re-run the
// parser/builder/atomizer. A miss, a disabled cache, or a corrupt entry is
// never fatal: the caller always falls back to a full rebuild, and cache
// entries are never trusted to skip emission (Emit is always re-run on
// whatever Automaton/Atomized the caller ends up with). Grounded on
// server/dao/sqlite's rezi.EncBinary/DecBinary usage for *game.State.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/rezi"
)

// Key returns the cache key for a normalized description: the hex SHA-256
// of its text.
func Key(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func entryPath(dir, flavor, key string) string {
	return filepath.Join(dir, flavor+"-"+key+".rezi")
}

// Load looks up the cached snapshot for (flavor, key) under dir and decodes
// it into out. It reports (false, nil) on a clean miss, so callers never
// need to special-case "file not found" as an error: any non-nil error here
// means the entry exists but is unusable, which is still not fatal to the
// caller, just worth logging.
func Load[T any](dir, flavor, key string, out *T) (bool, error) {
	p := entryPath(dir, flavor, key)

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, ppcerrors.WrapIO(p, err)
	}

	n, err := rezi.DecBinary(data, out)
	if err != nil {
		return false, ppcerrors.WrapIO(p, err)
	}
	if n != len(data) {
		return false, ppcerrors.WrapIO(p, nil)
	}

	return true, nil
}

// Store encodes v and writes it to dir as the cache entry for (flavor,
// key), creating dir if it doesn't exist. A Store failure should be logged
// by the caller and otherwise ignored; it never invalidates a compile that
// already succeeded.
func Store[T any](dir, flavor, key string, v *T) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ppcerrors.WrapIO(dir, err)
	}

	data := rezi.EncBinary(v)

	p := entryPath(dir, flavor, key)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return ppcerrors.WrapIO(p, err)
	}

	return nil
}
