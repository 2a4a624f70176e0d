// Package config provides layered configuration for the law checker:
// defaults, then a JSON or YAML file, then environment variables, then
// explicit overrides such as command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LAWCHECK"

var (
	// ErrInvalidValue is returned when a value has the wrong type or is out of range.
	ErrInvalidValue = errors.New("config: invalid value")
	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Source names the layer a value came from. Later sources take precedence.
type Source int

const (
	SourceDefault Source = iota
	SourceFile
	SourceEnv
	SourceOverride
	numSources
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceOverride:
		return "override"
	}
	return "Source(" + strconv.Itoa(int(s)) + ")"
}

// Config holds values under dotted keys such as "log.level", one map per
// source.
type Config struct {
	layers [numSources]map[string]any
}

// New creates an empty Config.
func New() *Config {
	c := &Config{}
	for i := range c.layers {
		c.layers[i] = make(map[string]any)
	}
	return c
}

// WithDefaults merges defaults into the lowest layer.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	maps.Copy(c.layers[SourceDefault], defaults)
	return c
}

// LoadFile reads a .json, .yaml or .yml file. Nested objects become
// dotted keys.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	flatten("", values, c.layers[SourceFile])
	return nil
}

func flatten(prefix string, in, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// LoadEnv reads variables named PREFIX_SOME_KEY into "some.key".
func (c *Config) LoadEnv(prefix string) *Config {
	for _, env := range os.Environ() {
		name, value, _ := strings.Cut(env, "=")
		rest, ok := strings.CutPrefix(name, prefix+"_")
		if !ok || rest == "" {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(rest, "_", "."))
		c.layers[SourceEnv][key] = value
	}
	return c
}

// Set overrides key above every other source.
func (c *Config) Set(key string, value any) {
	c.layers[SourceOverride][key] = value
}

// Lookup returns the effective value of key and the source it came from.
func (c *Config) Lookup(key string) (any, Source, bool) {
	for s := numSources - 1; s >= SourceDefault; s-- {
		if v, ok := c.layers[s][key]; ok {
			return v, s, true
		}
	}
	return nil, 0, false
}

// Get returns the effective value of key.
func (c *Config) Get(key string) (any, bool) {
	v, _, ok := c.Lookup(key)
	return v, ok
}

// GetString formats the value of key, or returns "" if unset.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetInt returns the value of key as an int, or 0 if unset. Strings are
// parsed; floats must be whole.
func (c *Config) GetInt(key string) (int, error) {
	v, ok := c.Get(key)
	if !ok {
		return 0, nil
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		if val <= math.MaxInt {
			return int(val), nil
		}
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s: %v is not an integer", ErrInvalidValue, key, v)
}

// GetUint64 returns the value of key as a uint64, or 0 if unset. Negative
// numbers are rejected.
func (c *Config) GetUint64(key string) (uint64, error) {
	v, ok := c.Get(key)
	if !ok {
		return 0, nil
	}
	switch val := v.(type) {
	case uint64:
		return val, nil
	case int:
		if val >= 0 {
			return uint64(val), nil
		}
	case int64:
		if val >= 0 {
			return uint64(val), nil
		}
	case float64:
		if val >= 0 && val < 1<<64 && val == float64(uint64(val)) {
			return uint64(val), nil
		}
	case string:
		if u, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64); err == nil {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %s: %v is not an unsigned integer", ErrInvalidValue, key, v)
}

// GetBool returns the value of key as a bool, or false if unset.
func (c *Config) GetBool(key string) (bool, error) {
	v, ok := c.Get(key)
	if !ok {
		return false, nil
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: %s: %v is not a boolean", ErrInvalidValue, key, v)
}

// GetStringSlice returns the value of key as a list. A string is split on
// commas.
func (c *Config) GetStringSlice(key string) []string {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			result[i] = fmt.Sprint(item)
		}
		return result
	case string:
		if val == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}

// Validate checks that required keys are set by some source.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if _, ok := c.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError lists required keys no source provided.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return "missing required config keys: " + strings.Join(e.MissingKeys, ", ")
}

// Keys returns every key set by any source, sorted.
func (c *Config) Keys() []string {
	seen := make(map[string]struct{})
	for _, layer := range c.layers {
		for k := range layer {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
