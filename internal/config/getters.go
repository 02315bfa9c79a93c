package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/occidere/mmdownloader/internal/model"
)

// lookup returns def when name is absent and parse(value) otherwise.
func lookup[T any](c *Configuration, name string, def T, typ string, parse func(string) (T, error)) (T, error) {
	raw, ok := c.store.Get(name)
	if !ok {
		return def, nil
	}

	v, err := parse(raw)
	if err != nil {
		var zero T
		return zero, &ParseError{Key: name, Value: raw, Type: typ, Err: err}
	}
	return v, nil
}

// GetShort returns the setting as a 16-bit integer.
func (c *Configuration) GetShort(name string, def int16) (int16, error) {
	return lookup(c, name, def, "int16", func(s string) (int16, error) {
		v, err := strconv.ParseInt(s, 10, 16)
		return int16(v), err
	})
}

// GetByte returns the setting as a signed 8-bit integer.
func (c *Configuration) GetByte(name string, def int8) (int8, error) {
	return lookup(c, name, def, "int8", func(s string) (int8, error) {
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	})
}

// GetInt returns the setting as an int.
func (c *Configuration) GetInt(name string, def int) (int, error) {
	return lookup(c, name, def, "int", strconv.Atoi)
}

// GetFloat returns the setting as a float32. Surrounding whitespace is
// ignored and values beyond the float32 range become ±Inf.
func (c *Configuration) GetFloat(name string, def float32) (float32, error) {
	return lookup(c, name, def, "float32", func(s string) (float32, error) {
		v, err := parseFloat(s, 32)
		return float32(v), err
	})
}

// GetDouble returns the setting as a float64. Surrounding whitespace is
// ignored and values beyond the float64 range become ±Inf.
func (c *Configuration) GetDouble(name string, def float64) (float64, error) {
	return lookup(c, name, def, "float64", func(s string) (float64, error) {
		return parseFloat(s, 64)
	})
}

func parseFloat(s string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// GetString returns the stored value, or def when name is absent.
func (c *Configuration) GetString(name string, def string) string {
	if v, ok := c.store.Get(name); ok {
		return v
	}
	return def
}

// GetBoolean returns def when name is absent. Otherwise the setting is true
// only if it equals "true" ignoring case; any other value is false.
func (c *Configuration) GetBoolean(name string, def bool) bool {
	if v, ok := c.store.Get(name); ok {
		return model.ParseBool(v)
	}
	return def
}
