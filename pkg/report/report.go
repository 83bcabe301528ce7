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

// Package report prints user-facing feedback about property changes,
// dual-writing every message to the structured log.
package report

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 ChangeType classifies what happened to a property
type ChangeType int

const (
	PropertyChanged ChangeType = iota
	PropertyCreated
	PropertyUnchanged
	PropertyError
)

// 🖼️ Change describes one property touched during a run
type Change struct {
	Type   ChangeType
	Key    string // source property key
	Target string // destination key (differs from Key for suffixed output)
	Before string
	After  string
	Err    error
}

// 📢 Reporter provides user-friendly feedback about replacement runs
type Reporter struct {
	log zerolog.Logger // for debug/error logging
}

// NewReporter creates a reporter bound to the context logger
func NewReporter(logger zerolog.Logger) *Reporter {
	return &Reporter{log: logger}
}

// 📝 LogChange logs a property change with appropriate prefix and formatting
func (r *Reporter) LogChange(change Change) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case PropertyCreated:
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case PropertyChanged:
		action = "Changed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
	case PropertyUnchanged:
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case PropertyError:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, change.Target)
	if change.Type == PropertyChanged || change.Type == PropertyCreated {
		msg += fmt.Sprintf(" (%q -> %q)", change.Before, change.After)
	}

	if change.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Err)
		r.log.Error().Err(change.Err).Str("property", change.Key).Msg(msg)
	} else {
		printer.Println(msg)
		r.log.Info().Str("property", change.Key).Str("target", change.Target).Msg(msg)
	}
}

// 📊 LogSummary logs the outcome of one file's replacement run
func (r *Reporter) LogSummary(file string, changed, created, total int) {
	msg := fmt.Sprintf("%s: %d changed, %d created, %d properties", file, changed, created, total)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	r.log.Info().
		Str("file", file).
		Int("changed", changed).
		Int("created", created).
		Int("total", total).
		Msg("replacement run complete")
}

// 🔍 LogValidation logs validation results
func (r *Reporter) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		r.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		r.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		r.log.Warn().Msg(description)
	}
}
