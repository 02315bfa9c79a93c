// Package model defines the runtime settings the downloader reads while it
// works, and the names they are stored under.
//
// # Runtime
//
// Runtime holds the live values of the recognized settings:
//
//	rt := model.NewRuntime("1.2.0")
//	reg := rt.Registry() // PATH, MERGE, DEBUG, VERSION slots
//
// Binding a stored set into reg updates rt in place. MERGE and DEBUG use the
// permissive boolean rule: only a case-insensitive "true" is true. VERSION is
// read-only; storing it in the settings file has no effect on rt.
package model
