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

package eval

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gitlab.com/tozd/go/errors"
)

// placeholderPattern matches ${...} segments inside a raw string
var placeholderPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// ExprEvaluator resolves ${...} placeholders against an environment map,
// evaluating the placeholder body as an expr-lang expression. A raw string
// that is exactly one placeholder resolves to the expression's typed result;
// a string mixing placeholders and literal text resolves to the interpolated
// string. Strings without placeholders resolve to nothing, so the engine
// keeps them untouched.
type ExprEvaluator struct {
	env map[string]any

	programMu sync.RWMutex
	programs  map[string]*vm.Program
}

// NewExprEvaluator creates an evaluator over the given environment. The env
// map is used as-is and must not be mutated while the evaluator is in use.
func NewExprEvaluator(env map[string]any) *ExprEvaluator {
	if env == nil {
		env = map[string]any{}
	}
	return &ExprEvaluator{
		env:      env,
		programs: map[string]*vm.Program{},
	}
}

// Evaluate implements Evaluator
func (e *ExprEvaluator) Evaluate(raw string) (any, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	// A lone placeholder keeps the typed result of its expression.
	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(raw) {
		return e.run(raw[matches[0][2]:matches[0][3]])
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(raw[last:m[0]])
		result, err := e.run(raw[m[2]:m[3]])
		if err != nil {
			return nil, err
		}
		if result == nil {
			// Unresolvable placeholders stay as written.
			b.WriteString(raw[m[0]:m[1]])
		} else {
			fmt.Fprintf(&b, "%v", result)
		}
		last = m[1]
	}
	b.WriteString(raw[last:])
	return b.String(), nil
}

// run compiles (or reuses) and executes a single expression
func (e *ExprEvaluator) run(expression string) (any, error) {
	program, err := e.compile(expression)
	if err != nil {
		return nil, errors.Errorf("compiling expression %q: %w", expression, err)
	}
	result, err := expr.Run(program, e.env)
	if err != nil {
		return nil, errors.Errorf("evaluating expression %q: %w", expression, err)
	}
	return result, nil
}

func (e *ExprEvaluator) compile(expression string) (*vm.Program, error) {
	e.programMu.RLock()
	program, ok := e.programs[expression]
	e.programMu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(expression, expr.Env(e.env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	e.programMu.Lock()
	e.programs[expression] = program
	e.programMu.Unlock()
	return program, nil
}
