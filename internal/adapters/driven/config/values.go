// Package config holds the flat key table shared by the config stores.
// Keys use dot notation; the file store nests them into TOML tables.
package config

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Values is a concurrency-safe map of dot-notation keys to decoded values.
// Getters accept the shapes produced by TOML decoding as well as the Go
// types written by the settings service.
type Values struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewValues creates a table holding a copy of seed.
func NewValues(seed map[string]any) *Values {
	v := &Values{m: make(map[string]any, len(seed))}
	maps.Copy(v.m, seed)
	return v
}

// Get returns the raw value of key.
func (v *Values) Get(key string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.m[key]
	return val, ok
}

// GetString returns "" for missing or non-string values.
func (v *Values) GetString(key string) string {
	s, _ := lookup[string](v, key)
	return s
}

// GetInt accepts int, int64, float64 and numeric strings.
func (v *Values) GetInt(key string) int {
	val, ok := v.Get(key)
	if !ok {
		return 0
	}
	switch n := val.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// GetBool returns false for missing or non-bool values.
func (v *Values) GetBool(key string) bool {
	b, _ := lookup[bool](v, key)
	return b
}

// GetStringSlice accepts a list or a comma-separated string. Non-string
// list elements are skipped.
func (v *Values) GetStringSlice(key string) []string {
	val, ok := v.Get(key)
	if !ok {
		return nil
	}
	switch list := val.(type) {
	case []string:
		return slices.Clone(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return nil
	}
}

// Keys returns the stored keys sorted.
func (v *Values) Keys() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Sorted(maps.Keys(v.m))
}

// Put stores value under key.
func (v *Values) Put(key string, value any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m[key] = value
}

// Snapshot returns a copy of the table.
func (v *Values) Snapshot() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return maps.Clone(v.m)
}

// Reset replaces the table with m.
func (v *Values) Reset(m map[string]any) {
	if m == nil {
		m = make(map[string]any)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m = m
}

func lookup[T any](v *Values, key string) (T, bool) {
	var zero T
	val, ok := v.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := val.(T)
	return t, ok
}

// Flatten turns nested tables into dot-notation keys:
// {"sanity": {"dataset": "x"}} becomes {"sanity.dataset": "x"}.
func Flatten(tree map[string]any) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, "", tree)
	return flat
}

func flattenInto(dst map[string]any, prefix string, tree map[string]any) {
	for k, val := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			flattenInto(dst, k, sub)
			continue
		}
		dst[k] = val
	}
}

// Nest is the inverse of Flatten. When a key is both a value and the
// prefix of other keys, the value is kept and the longer keys dropped.
func Nest(flat map[string]any) map[string]any {
	keys := slices.Collect(maps.Keys(flat))
	slices.SortFunc(keys, func(a, b string) int {
		if d := strings.Count(a, ".") - strings.Count(b, "."); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	root := make(map[string]any)
	for _, key := range keys {
		setPath(root, strings.Split(key, "."), flat[key])
	}
	return root
}

func setPath(node map[string]any, path []string, value any) {
	for _, p := range path[:len(path)-1] {
		child, exists := node[p]
		if !exists {
			child = make(map[string]any)
			node[p] = child
		}
		table, ok := child.(map[string]any)
		if !ok {
			return
		}
		node = table
	}
	node[path[len(path)-1]] = value
}
