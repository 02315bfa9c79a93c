package properties

import (
	"io"
	"sort"
	"unicode/utf8"

	"github.com/magiconair/properties"

	ioutils "github.com/occidere/mmdownloader/internal/io"
)

// Store is an in-memory property set backed by one file on disk.
//
// Store is not safe for concurrent use; callers sharing it across
// goroutines must synchronize access themselves.
type Store struct {
	path  string
	props *properties.Properties
}

// NewStore creates an empty Store backed by the file at path.
// The file is not touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		props: newSet(),
	}
}

func newSet() *properties.Properties {
	p := properties.NewProperties()
	// Values such as "${HOME}" are kept literally.
	p.DisableExpansion = true
	return p
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is currently present on disk.
func (s *Store) Exists() bool {
	return ioutils.FileExists(s.path)
}

// Load reads the backing file and merges its entries into memory.
//
// A missing file is created empty first. Entries read from disk overwrite
// in-memory entries with the same key; keys that are only in memory are
// left untouched.
func (s *Store) Load() error {
	if err := s.ensure(); err != nil {
		return err
	}

	data, err := ioutils.ReadFile(s.path)
	if err != nil {
		return &IOError{Op: OpRead, Path: s.path, Err: err}
	}

	content, err := prepare(string(data))
	if err != nil {
		return &IOError{Op: OpParse, Path: s.path, Err: err}
	}

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	loaded, err := loader.LoadBytes([]byte(content))
	if err != nil {
		return &IOError{Op: OpParse, Path: s.path, Err: err}
	}

	for _, key := range loaded.Keys() {
		value, _ := loaded.Get(key)
		s.Set(key, value)
	}

	return nil
}

// Save overwrites the backing file with every entry currently in memory.
// A missing file is created first. No header comment is written.
func (s *Store) Save() error {
	if err := s.ensure(); err != nil {
		return err
	}

	err := ioutils.WriteFile(s.path, func(w io.Writer) error {
		return s.write(w)
	})
	if err != nil {
		return &IOError{Op: OpWrite, Path: s.path, Err: err}
	}

	return nil
}

func (s *Store) write(w io.Writer) error {
	keys := s.props.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		value, _ := s.props.Get(key)
		if _, err := io.WriteString(w, FormatEntry(key, value)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo writes the in-memory set to w in the same format Save uses:
// one line per entry, keys in sorted order.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.write(cw)
	return cw.n, err
}

func (s *Store) ensure() error {
	if _, err := ioutils.EnsureFile(s.path); err != nil {
		return &IOError{Op: OpCreate, Path: s.path, Err: err}
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	return s.props.Get(key)
}

// Set inserts or replaces the value stored under key. It neither persists
// nor binds anything. The empty key is ignored.
//
// Invalid UTF-8 bytes in key or value are stored as U+FFFD, one per byte,
// which is what reading them back from the file would yield.
func (s *Store) Set(key, value string) {
	// Expansion is disabled, so Set cannot fail.
	_, _, _ = s.props.Set(validUTF8(key), validUTF8(value))
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string([]rune(s))
}

// Has reports whether key is present in memory.
func (s *Store) Has(key string) bool {
	_, ok := s.props.Get(key)
	return ok
}

// Keys returns the keys currently in memory. The order is unspecified.
func (s *Store) Keys() []string {
	return s.props.Keys()
}

// Len returns the number of entries in memory.
func (s *Store) Len() int {
	return s.props.Len()
}

// Map returns a copy of the in-memory set.
func (s *Store) Map() map[string]string {
	return s.props.Map()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
