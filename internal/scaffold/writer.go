package scaffold

import (
	"os"
	"path/filepath"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// writeFile writes content to path atomically using a temporary file and
// rename. Parent directories are created as needed.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := createDir(dir); err != nil {
			return err
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return newError(ErrCopy, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newError(ErrCopy, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newError(ErrCopy, "failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newError(ErrCopy, "failed to rename temporary file", path, err)
	}

	debug.Debug("[scaffold] Wrote file: %s (%d bytes)", path, len(content))
	return nil
}

// createDir creates a directory and any necessary parents.
func createDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newError(ErrCopy, "failed to create directory", path, err)
	}
	return nil
}

// exists reports whether a file or directory exists at path.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
