// Package ioutils provides the file system helpers used by the settings store.
//
// This package contains functions for:
//   - Directory creation
//   - Create-if-missing file semantics
//   - Scoped reading and overwriting of whole files
//
// # File Operations
//
//	// Make sure the settings file exists before reading it
//	created, err := ioutils.EnsureFile("/home/me/Marumaru/MMDownloader.properties")
//
//	// Read the whole file; the handle is closed before returning
//	data, err := ioutils.ReadFile(path)
//
//	// Overwrite the file through a buffered writer
//	err := ioutils.WriteFile(path, func(w io.Writer) error {
//	    _, err := io.WriteString(w, "DEBUG=false\n")
//	    return err
//	})
//
// Every helper acquires its file handle locally and releases it on all
// exit paths, including read and write failures.
package ioutils
