// Package properties implements the file-backed settings store.
//
// A Store keeps a flat set of string keys and string values in memory and
// mirrors it to a single text file in the properties format:
//
//	# comment
//	PATH=/home/me/Marumaru
//	MERGE=false
//	DEBUG=false
//
// Parsing accepts the full format (":" and whitespace separators, "#" and "!"
// comments, backslash escapes, \uXXXX literals and line continuations) through
// github.com/magiconair/properties. Writing produces one key=value line per
// entry with no header comment.
//
// # Basic Usage
//
//	store := properties.NewStore("/home/me/Marumaru/MMDownloader.properties")
//	if err := store.Load(); err != nil {
//	    // *properties.IOError
//	}
//	store.Set("MERGE", "true")
//	err := store.Save()
//
// Load merges the file into memory: keys read from disk overwrite keys of
// the same name, other in-memory keys survive. Save overwrites the file with
// everything currently in memory.
package properties
