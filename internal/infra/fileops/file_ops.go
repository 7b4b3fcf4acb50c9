// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for project generation.
// Why: Keep permissions and existence checks consistent across writers.
package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, DirPerm)
}

// WriteFile writes content to path, creating missing parents first.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), FilePerm)
}

// WriteConfigFile writes owner-only content, replacing a directory at path.
func WriteConfigFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o600)
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists reports whether anything (file, directory, or dangling symlink)
// occupies path. Errors other than "not exist" count as occupied.
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	return !errors.Is(err, fs.ErrNotExist)
}
