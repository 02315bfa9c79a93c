// Package config is the settings facade of the downloader.
//
// A Configuration ties together the settings file (package properties), the
// runtime slots the settings feed (package binding) and the error-log sink.
//
// # Lifecycle
//
//	info, _ := sysinfo.Load()
//	rt := model.NewRuntime(version)
//	cfg := config.New(info, rt.Registry(), log)
//	cfg.Init() // load, apply built-in defaults, refresh
//
// Init never fails: a missing or unreadable settings file is reported to the
// sink and the application continues with the built-in defaults
// (PATH=<base dir>, MERGE=false, DEBUG=false).
//
// # Changing Settings
//
//	cfg.SetProperty("MERGE", "true") // memory only
//	err := cfg.Refresh()             // store, reload, bind
//
// Refresh, LoadProperty and StoreProperty return their I/O failures.
//
// # Typed Access
//
// Getters read the in-memory set and fall back to the given default when the
// key is absent:
//
//	n, err := cfg.GetInt("RETRIES", 3) // *ParseError if the value is not a number
//	debug := cfg.GetBoolean("DEBUG", false)
//
// GetBoolean never fails: only a case-insensitive "true" is true.
package config
