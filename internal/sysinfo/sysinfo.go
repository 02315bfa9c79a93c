// Package sysinfo resolves where the downloader keeps its files.
//
// Info carries the platform base directory and path separator the settings
// file location is built from. Defaults come from the user's home directory
// and may be overridden through environment variables:
//
//	MMDL_BASE_DIR        base directory (default: <home>/Marumaru)
//	MMDL_PATH_SEPARATOR  path separator (default: the OS separator)
//	MMDL_ERROR_LOG       error log file name inside the base directory
package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// SettingsFileName is the name of the settings file inside the base directory.
const SettingsFileName = "MMDownloader.properties"

// ErrInvalidSystemInfo is returned when the resolved Info lacks a base
// directory or a separator.
var ErrInvalidSystemInfo = errors.New("invalid system info")

// Info describes the platform locations used by the application.
type Info struct {
	// BaseDir is the directory downloads and settings live under.
	BaseDir string `env:"MMDL_BASE_DIR"`
	// Separator joins BaseDir with file names.
	Separator string `env:"MMDL_PATH_SEPARATOR"`
	// ErrorLog is the error log file name inside BaseDir.
	ErrorLog string `env:"MMDL_ERROR_LOG"`
}

// Default returns the built-in locations: <home>/Marumaru, the OS path
// separator and "error.log".
func Default() *Info {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Info{
		BaseDir:   filepath.Join(home, "Marumaru"),
		Separator: string(os.PathSeparator),
		ErrorLog:  "error.log",
	}
}

// Load reads overrides from the environment and fills every unset field
// from Default.
func Load() (*Info, error) {
	info := &Info{}
	if err := env.Parse(info); err != nil {
		return nil, fmt.Errorf("error reading system info from env: %w", err)
	}

	return info.WithDefaults()
}

// WithDefaults fills the empty fields of i from Default and validates the
// result. i is modified in place and returned.
func (i *Info) WithDefaults() (*Info, error) {
	if err := mergo.Merge(i, Default()); err != nil {
		return nil, fmt.Errorf("error merging system info defaults: %w", err)
	}

	return i, i.validate()
}

func (i *Info) validate() error {
	if i.BaseDir == "" || i.Separator == "" {
		return ErrInvalidSystemInfo
	}
	return nil
}

// ConfigFile returns the settings file location:
// BaseDir + Separator + MMDownloader.properties.
func (i *Info) ConfigFile() string {
	return i.join(SettingsFileName)
}

// ErrorLogFile returns the error log location inside BaseDir.
func (i *Info) ErrorLogFile() string {
	return i.join(i.ErrorLog)
}

func (i *Info) join(name string) string {
	return i.BaseDir + i.Separator + name
}
