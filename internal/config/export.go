package config

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatProperties = "properties"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
)

// Export writes the in-memory settings to w in the given format, with keys
// in sorted order. It does not touch the settings file.
func (c *Configuration) Export(w io.Writer, format string) error {
	switch format {
	case FormatProperties, "":
		if _, err := c.store.WriteTo(w); err != nil {
			return fmt.Errorf("error writing settings: %w", err)
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c.store.Map()); err != nil {
			return fmt.Errorf("error encoding settings as json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c.store.Map()); err != nil {
			return fmt.Errorf("error encoding settings as yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
