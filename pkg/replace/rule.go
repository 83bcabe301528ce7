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

// Package replace implements the property replacement engine: an ordered
// list of declarative rules rewrites string properties in a store, one rule
// at a time, with optional expression evaluation and pre/post
// transformations around the token substitution.
package replace

import "strings"

// Phase says whether a transformation runs before or after the token
// substitution step.
type Phase string

const (
	PhaseBefore Phase = "BEFORE"
	PhaseAfter  Phase = "AFTER"
)

// Valid reports whether p is a known phase
func (p Phase) Valid() bool {
	return p == PhaseBefore || p == PhaseAfter
}

// Action is a pure string transformation applied around the substitution
// step of a rule.
type Action interface {
	Apply(content string) string
}

// ActionFunc adapts a plain function to the Action interface
type ActionFunc func(string) string

// Apply implements Action
func (f ActionFunc) Apply(content string) string {
	return f(content)
}

// TransformationRule pairs a phase with the action to run in that phase.
type TransformationRule struct {
	Phase  Phase
	Action Action
}

// Rule is a single replacement rule.
//
// Optional fields are pointers so that "absent" stays distinct from "empty":
// a nil Property applies the rule to every key in the store, a nil Token
// skips the substitution step with a logged error, while an empty-string
// token is a legal (if unusual) pattern.
type Rule struct {
	// Property is the key the rule applies to; nil means every key
	Property *string

	// Token is the substring or regex pattern to replace
	Token *string

	// Value is the replacement text; nil reads as empty string
	Value *string

	// Regex selects regex matching over literal substring matching
	Regex bool

	// ForceValueEvaluation always feeds Value to the expression
	// evaluator, even when the property already has content
	ForceValueEvaluation bool

	// PropertyOutputSuffix, when non-blank, redirects the result to a
	// new key "<key>.<suffix>" and leaves the original key untouched
	PropertyOutputSuffix string

	// TransformationRules run around the substitution, in order
	TransformationRules []TransformationRule
}

// value returns the replacement text, empty when absent
func (r Rule) value() string {
	if r.Value == nil {
		return ""
	}
	return *r.Value
}

// outputSuffix returns the trimmed output suffix; blank means overwrite in
// place
func (r Rule) outputSuffix() string {
	return strings.TrimSpace(r.PropertyOutputSuffix)
}
