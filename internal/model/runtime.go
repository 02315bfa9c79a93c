package model

import (
	"strings"

	"github.com/occidere/mmdownloader/internal/binding"
)

// Setting names recognized by the downloader.
const (
	KeyPath    = "PATH"
	KeyMerge   = "MERGE"
	KeyDebug   = "DEBUG"
	KeyVersion = "VERSION"
)

// Runtime holds the live values of the recognized settings.
type Runtime struct {
	// BasePath is where downloaded archives are written.
	BasePath string
	// Merge joins downloaded pages into one image per chapter.
	Merge bool
	// Debug enables verbose diagnostics.
	Debug bool
	// Version is the application version; it cannot be changed by settings.
	Version string
}

// NewRuntime creates a Runtime for the given application version.
func NewRuntime(version string) *Runtime {
	return &Runtime{Version: version}
}

// Registry returns the binding table for r. Each slot writes into r.
func (r *Runtime) Registry() *binding.Registry {
	return binding.NewRegistry().
		Register(KeyPath, func(v string) error {
			r.BasePath = v
			return nil
		}).
		Register(KeyMerge, func(v string) error {
			r.Merge = ParseBool(v)
			return nil
		}).
		Register(KeyDebug, func(v string) error {
			r.Debug = ParseBool(v)
			return nil
		}).
		Register(KeyVersion, binding.ReadOnly())
}

// ParseBool reports whether s equals "true" ignoring case. Any other input,
// including "1", "yes" and "", is false.
func ParseBool(s string) bool {
	return strings.EqualFold(s, "true")
}
