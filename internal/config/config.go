package config

import (
	"sort"

	"github.com/occidere/mmdownloader/internal/binding"
	"github.com/occidere/mmdownloader/internal/logger"
	"github.com/occidere/mmdownloader/internal/model"
	"github.com/occidere/mmdownloader/internal/properties"
	"github.com/occidere/mmdownloader/internal/sysinfo"
)

// Configuration is the settings facade. It is not safe for concurrent use.
type Configuration struct {
	info     *sysinfo.Info
	store    *properties.Store
	binder   *binding.Binder
	recorder binding.Recorder
	log      *logger.Logger
}

// Option customizes a Configuration.
type Option func(*Configuration)

// WithLogger sets the logger used for debug-level lifecycle entries.
func WithLogger(l *logger.Logger) Option {
	return func(c *Configuration) {
		c.log = l
	}
}

// New creates a Configuration for the settings file described by info.
//
// Stored settings are bound into the slots of registry. Failures that the
// facade handles itself (during Init, and per-slot binding failures) are
// reported to recorder.
func New(info *sysinfo.Info, registry *binding.Registry, recorder binding.Recorder, opts ...Option) *Configuration {
	c := &Configuration{
		info:     info,
		store:    properties.NewStore(info.ConfigFile()),
		binder:   binding.NewBinder(registry, recorder),
		recorder: recorder,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads the settings file, fills in the built-in defaults for absent
// keys and refreshes. Failures are recorded and swallowed so startup always
// completes.
func (c *Configuration) Init() {
	if err := c.LoadProperty(); err != nil {
		c.recorder.Record("failed to read settings file", c.store.Path(), err)
	}

	c.ApplyDefaults()

	if err := c.Refresh(); err != nil {
		c.recorder.Record("failed to refresh settings", c.store.Path(), err)
	}
}

// ApplyDefaults sets each built-in default whose key is absent. Existing
// values, including empty ones, are never overwritten.
func (c *Configuration) ApplyDefaults() {
	defaults := []struct{ key, value string }{
		{model.KeyPath, c.info.BaseDir},
		{model.KeyMerge, "false"},
		{model.KeyDebug, "false"},
	}

	for _, d := range defaults {
		if !c.store.Has(d.key) {
			c.store.Set(d.key, d.value)
		}
	}
}

// Refresh stores the in-memory settings, reloads them from disk and binds
// them into the runtime slots. The first failing step's error is returned.
func (c *Configuration) Refresh() error {
	if err := c.StoreProperty(); err != nil {
		return err
	}
	if err := c.LoadProperty(); err != nil {
		return err
	}
	c.ApplyProperty()
	return nil
}

// LoadProperty merges the settings file into memory, creating an empty file
// if none exists.
func (c *Configuration) LoadProperty() error {
	if err := c.store.Load(); err != nil {
		return err
	}
	c.log.Debug().Str("path", c.store.Path()).Int("entries", c.store.Len()).Msg("settings loaded")
	return nil
}

// StoreProperty overwrites the settings file with the in-memory settings.
func (c *Configuration) StoreProperty() error {
	if err := c.store.Save(); err != nil {
		return err
	}
	c.log.Debug().Str("path", c.store.Path()).Int("entries", c.store.Len()).Msg("settings stored")
	return nil
}

// ApplyProperty binds the in-memory settings into the runtime slots.
// Per-slot failures are recorded, never returned.
func (c *Configuration) ApplyProperty() {
	bound := c.binder.Apply(c.store)
	c.log.Debug().Int("bound", bound).Msg("settings applied")
}

// SetProperty inserts or replaces a setting in memory. Call Refresh to
// persist and bind it.
func (c *Configuration) SetProperty(key, value string) {
	c.store.Set(key, value)
}

// Exists reports whether the settings file is present on disk.
func (c *Configuration) Exists() bool {
	return c.store.Exists()
}

// Path returns the settings file location.
func (c *Configuration) Path() string {
	return c.store.Path()
}

// Keys returns the keys currently in memory, sorted.
func (c *Configuration) Keys() []string {
	keys := c.store.Keys()
	sort.Strings(keys)
	return keys
}
