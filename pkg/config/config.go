// Package config reads the declarative settings widgets are built from. A
// Source wraps viper so screens can live in YAML, TOML or JSON files or be
// assembled in memory; widgets only see the narrow Reader interface.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrMissingKey is returned when a required key is absent.
var ErrMissingKey = errors.New("missing key")

// Reader is a keyed view over configuration data.
type Reader interface {
	Has(key string) bool
	String(key string) (string, error)
	Int(key string) (int, error)
	Bool(key string) (bool, error)
	Strings(key string) ([]string, error)
	Sub(key string) (Reader, error)
}

// Source is a Reader backed by viper. Keys are case-insensitive and may use
// dots to reach into nested maps.
type Source struct {
	v *viper.Viper
}

var _ Reader = (*Source)(nil)

// Load reads a configuration file. The format follows the file extension.
func Load(path string) (*Source, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &Source{v: v}, nil
}

// FromMap builds a Source from in-memory data.
func FromMap(m map[string]any) (*Source, error) {
	v := viper.New()
	if err := v.MergeConfigMap(m); err != nil {
		return nil, fmt.Errorf("merge config map: %w", err)
	}
	return &Source{v: v}, nil
}

// Has reports whether key is set.
func (s *Source) Has(key string) bool {
	return s.v.IsSet(key)
}

func (s *Source) get(key string) (any, error) {
	if !s.v.IsSet(key) {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return s.v.Get(key), nil
}

// String returns key coerced to a string.
func (s *Source) String(key string) (string, error) {
	raw, err := s.get(key)
	if err != nil {
		return "", err
	}
	out, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("key %s: %w", key, err)
	}
	return out, nil
}

// Int returns key coerced to an int.
func (s *Source) Int(key string) (int, error) {
	raw, err := s.get(key)
	if err != nil {
		return 0, err
	}
	out, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("key %s: %w", key, err)
	}
	return out, nil
}

// Bool returns key coerced to a bool.
func (s *Source) Bool(key string) (bool, error) {
	raw, err := s.get(key)
	if err != nil {
		return false, err
	}
	out, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("key %s: %w", key, err)
	}
	return out, nil
}

// Strings returns key coerced to a string slice.
func (s *Source) Strings(key string) ([]string, error) {
	raw, err := s.get(key)
	if err != nil {
		return nil, err
	}
	out, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}
	return out, nil
}

// Sub returns the nested map at key as its own Reader.
func (s *Source) Sub(key string) (Reader, error) {
	return s.SubSource(key)
}

// SubSource is Sub with the concrete return type.
func (s *Source) SubSource(key string) (*Source, error) {
	if !s.v.IsSet(key) {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	sub := s.v.Sub(key)
	if sub == nil {
		return nil, fmt.Errorf("key %s: not a map", key)
	}
	return &Source{v: sub}, nil
}

// List returns the list of maps at key, one Source per element.
func (s *Source) List(key string) ([]*Source, error) {
	raw, err := s.get(key)
	if err != nil {
		return nil, err
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}

	out := make([]*Source, 0, len(items))
	for i, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("key %s[%d]: %w", key, i, err)
		}
		src, err := FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("key %s[%d]: %w", key, i, err)
		}
		out = append(out, src)
	}
	return out, nil
}

// StringOr returns key as a string, or def when the key is absent.
func StringOr(r Reader, key, def string) (string, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.String(key)
}

// IntOr returns key as an int, or def when the key is absent.
func IntOr(r Reader, key string, def int) (int, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Int(key)
}

// BoolOr returns key as a bool, or def when the key is absent.
func BoolOr(r Reader, key string, def bool) (bool, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Bool(key)
}
