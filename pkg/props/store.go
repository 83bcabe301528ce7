// Copyright 2025 the propreplace authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package props provides the ordered property store the replacement engine
// operates on, plus Java-style .properties file round-tripping for the CLI.
package props

// 🗄️ Store is the property store the replacement engine reads and writes.
// Implementations are not safe for concurrent use; callers must serialize
// access for the duration of a replacement run.
type Store interface {
	// Get returns the value for key, and whether the key exists
	Get(key string) (string, bool)

	// Set writes value under key, creating the key if needed
	Set(key, value string)

	// Keys returns all keys in insertion order
	Keys() []string
}

// 📦 Map is an insertion-ordered string map implementing Store.
type Map struct {
	keys   []string
	values map[string]string
}

// NewMap creates an empty Map
func NewMap() *Map {
	return &Map{
		values: map[string]string{},
	}
}

// Get implements Store.Get
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set implements Store.Set. Setting an existing key updates it in place
// without changing its position.
func (m *Map) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Keys implements Store.Keys. The returned slice is a copy; mutating the
// store afterwards does not affect it.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of properties in the map
func (m *Map) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy of the map
func (m *Map) Clone() *Map {
	out := NewMap()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}
