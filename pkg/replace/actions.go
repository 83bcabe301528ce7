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

package replace

import (
	"sort"
	"strings"
)

// Built-in named actions, addressable from rule configuration files.
var builtinActions = map[string]Action{
	"LOWER_CASE": ActionFunc(strings.ToLower),
	"UPPER_CASE": ActionFunc(strings.ToUpper),
}

// LookupAction resolves a named action to its implementation
func LookupAction(name string) (Action, bool) {
	a, ok := builtinActions[name]
	return a, ok
}

// ActionNames returns the known action names, sorted, for error messages
func ActionNames() []string {
	names := make([]string, 0, len(builtinActions))
	for name := range builtinActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
