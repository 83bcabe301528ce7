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

// Package eval provides the expression evaluation capability consumed by the
// replacement engine. The engine never depends on a concrete expression
// language; it hands a raw string to an Evaluator and falls back to the raw
// string when evaluation yields nothing or fails.
package eval

// Evaluator resolves expressions embedded in a raw string. A nil result with
// a nil error means the input contained nothing to resolve; callers should
// keep the raw string.
type Evaluator interface {
	Evaluate(raw string) (any, error)
}

// Nop is an Evaluator that never resolves anything. It stands in for hosts
// that do not carry an expression language.
type Nop struct{}

// Evaluate implements Evaluator
func (Nop) Evaluate(string) (any, error) {
	return nil, nil
}
