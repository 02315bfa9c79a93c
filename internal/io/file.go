package ioutils

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/me/Marumaru")
func EnsureDir(path string) error {
	return os.MkdirAll(path, dirMode)
}

// EnsureFile creates an empty file at path if nothing exists there yet.
//
// Missing parent directories are created first. The returned flag reports
// whether this call created the file. An existing file is never truncated.
//
// Example:
//
//	created, err := EnsureFile("/home/me/Marumaru/MMDownloader.properties")
func EnsureFile(path string) (bool, error) {
	if FileExists(path) {
		return false, nil
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		// Lost a race with another creator; the file is there now.
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	return true, f.Close()
}

// FileExists reports whether path currently names an existing file or directory.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the whole file at path.
//
// Unlike os.ReadFile it keeps the open and the read as separate steps so
// callers can tell "cannot open" from "cannot read" through the wrapped
// *fs.PathError. The handle is closed before returning.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// WriteFile truncates (or creates) the file at path and hands a buffered
// writer to write.
//
// The buffer is flushed and the file closed on every path. The first error
// among write, flush and close is returned.
//
// Example:
//
//	err := WriteFile("/tmp/settings.properties", func(w io.Writer) error {
//	    _, err := io.WriteString(w, "MERGE=false\n")
//	    return err
//	})
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}

	return bw.Flush()
}
