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

// Package config loads and validates replacement rule configuration files.
package config

import (
	"strings"

	"github.com/gzm55/propreplace/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// 🔧 TransformationRule configures one pre/post transformation step
type TransformationRule struct {
	Apply  string `json:"apply" yaml:"apply"`   // BEFORE or AFTER
	Action string `json:"action" yaml:"action"` // named action, e.g. LOWER_CASE
}

// 🔄 Replacement configures one replacement rule
type Replacement struct {
	Property             *string              `json:"property,omitempty" yaml:"property,omitempty"`
	Token                *string              `json:"token,omitempty" yaml:"token,omitempty"`
	Value                *string              `json:"value,omitempty" yaml:"value,omitempty"`
	Regex                bool                 `json:"regex,omitempty" yaml:"regex,omitempty"`
	ForceValueEvaluation bool                 `json:"forceValueEvaluation,omitempty" yaml:"forceValueEvaluation,omitempty"`
	PropertyOutputSuffix string               `json:"propertyOutputSuffix,omitempty" yaml:"propertyOutputSuffix,omitempty"`
	TransformationRules  []TransformationRule `json:"transformationRules,omitempty" yaml:"transformationRules,omitempty"`
}

// 📚 Config is the complete rule configuration
type Config struct {
	Replacements []Replacement `json:"replacements" yaml:"replacements"`

	// location is the file the config was loaded from, if any
	location string
}

// Location returns the path the config was loaded from
func (c *Config) Location() string {
	return c.location
}

// Validate checks the configuration for structural errors
func (c *Config) Validate() error {
	for i, r := range c.Replacements {
		for j, tr := range r.TransformationRules {
			phase := replace.Phase(tr.Apply)
			if !phase.Valid() {
				return errors.Errorf(
					"replacement %d: transformation rule %d: apply must be %s or %s, got %q",
					i, j, replace.PhaseBefore, replace.PhaseAfter, tr.Apply)
			}
			if _, ok := replace.LookupAction(tr.Action); !ok {
				return errors.Errorf(
					"replacement %d: transformation rule %d: unknown action %q (known: %s)",
					i, j, tr.Action, strings.Join(replace.ActionNames(), ", "))
			}
		}
	}
	return nil
}

// Rules converts the configuration to engine rules. The config must have
// been validated first; unknown actions fail here as well.
func (c *Config) Rules() ([]replace.Rule, error) {
	rules := make([]replace.Rule, 0, len(c.Replacements))
	for i, r := range c.Replacements {
		rule := replace.Rule{
			Property:             r.Property,
			Token:                r.Token,
			Value:                r.Value,
			Regex:                r.Regex,
			ForceValueEvaluation: r.ForceValueEvaluation,
			PropertyOutputSuffix: r.PropertyOutputSuffix,
		}
		for _, tr := range r.TransformationRules {
			action, ok := replace.LookupAction(tr.Action)
			if !ok {
				return nil, errors.Errorf("replacement %d: unknown action %q", i, tr.Action)
			}
			rule.TransformationRules = append(rule.TransformationRules, replace.TransformationRule{
				Phase:  replace.Phase(tr.Apply),
				Action: action,
			})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
