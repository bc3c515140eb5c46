package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

const dirPerm = 0o755

// CopyTree recursively copies every directory and regular file of src into
// dstDir on dst. File contents are copied byte-for-byte; symlinks and other
// special files are skipped. It returns the number of files written.
func CopyTree(src fs.FS, dst afero.Fs, dstDir string) (int, error) {
	if err := dst.MkdirAll(dstDir, dirPerm); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dstDir, err)
	}

	files := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		if p == "." {
			return nil
		}

		target := filepath.Join(dstDir, filepath.FromSlash(p))
		switch {
		case d.IsDir():
			if err := dst.MkdirAll(target, dirPerm); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case d.Type().IsRegular():
			if err := copyFile(src, p, dst, target); err != nil {
				return err
			}
			files++
		}
		return nil
	})
	return files, err
}

// copyFile copies a single file from src to dst, keeping its permission bits
// but always leaving it writable by the owner (embedded files report 0444).
func copyFile(src fs.FS, name string, dst afero.Fs, target string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	info, err := fs.Stat(src, name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	if err := afero.WriteFile(dst, target, data, info.Mode().Perm()|0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
