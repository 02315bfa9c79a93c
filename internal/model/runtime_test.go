package model

import (
	"testing"

	"github.com/occidere/mmdownloader/internal/binding"
)

type source map[string]string

func (s source) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

func (s source) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

type countingRecorder struct{ n int }

func (c *countingRecorder) Record(string, string, error) { c.n++ }

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
		{" true", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseBool(tt.input); got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuntime_Registry(t *testing.T) {
	rt := NewRuntime("1.0.0")
	rec := &countingRecorder{}

	bound := binding.NewBinder(rt.Registry(), rec).Apply(source{
		KeyPath:    "/data/manga",
		KeyMerge:   "TRUE",
		KeyDebug:   "yes",
		KeyVersion: "9.9.9",
		"CUSTOM":   "x",
	})

	if bound != 3 {
		t.Errorf("bound = %d, want 3", bound)
	}
	if rt.BasePath != "/data/manga" {
		t.Errorf("BasePath = %q, want %q", rt.BasePath, "/data/manga")
	}
	if !rt.Merge {
		t.Error("Merge should be true for \"TRUE\"")
	}
	if rt.Debug {
		t.Error("Debug should be false for \"yes\"")
	}
	if rt.Version != "1.0.0" {
		t.Errorf("Version = %q, want it unchanged", rt.Version)
	}
	if rec.n != 1 {
		t.Errorf("recorded %d failures, want 1 (VERSION)", rec.n)
	}
}
