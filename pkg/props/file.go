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

package props

import (
	"os"

	"github.com/magiconair/properties"
	"gitlab.com/tozd/go/errors"
)

// LoadFile reads a Java-style .properties file into a Map, preserving the
// key order of the file.
func LoadFile(path string) (*Map, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errors.Errorf("loading properties file: %w", err)
	}
	return fromProperties(p), nil
}

// LoadBytes parses .properties content into a Map.
func LoadBytes(data []byte) (*Map, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, errors.Errorf("parsing properties: %w", err)
	}
	return fromProperties(p), nil
}

func fromProperties(p *properties.Properties) *Map {
	m := NewMap()
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		m.Set(key, value)
	}
	return m
}

// WriteFile writes the map to path in .properties format, one key per line
// in store order.
func (m *Map) WriteFile(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("creating properties file: %w", err)
	}
	defer f.Close()

	p := properties.NewProperties()
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		if _, _, err := p.Set(key, value); err != nil {
			return errors.Errorf("setting property %q: %w", key, err)
		}
	}
	if _, err := p.Write(f, properties.UTF8); err != nil {
		return errors.Errorf("writing properties file: %w", err)
	}
	return nil
}
