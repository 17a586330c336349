// Package fsio writes an emitter's generated file set to disk: create the
// output directory if it's absent, then open, write, and close each file in
// turn with guaranteed release on every exit path (spec.md 5).
package fsio

import (
	"os"
	"path/filepath"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
)

// WriteAll writes every entry of files (name -> content) into dir, creating
// dir if it doesn't already exist. Ordering is unspecified and doesn't
// matter: the emitted headers reference each other purely by #include, not
// by write order.
func WriteAll(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ppcerrors.WrapIO(dir, err)
	}

	for name, content := range files {
		if err := writeOne(filepath.Join(dir, name), content); err != nil {
			return err
		}
	}

	return nil
}

func writeOne(path, content string) (err error) {
	f, openErr := os.Create(path)
	if openErr != nil {
		return ppcerrors.WrapIO(path, openErr)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = ppcerrors.WrapIO(path, closeErr)
		}
	}()

	if _, err = f.WriteString(content); err != nil {
		err = ppcerrors.WrapIO(path, err)
		return err
	}

	return nil
}
