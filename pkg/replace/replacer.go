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
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gzm55/propreplace/pkg/eval"
	"github.com/gzm55/propreplace/pkg/props"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Replacer drives replacement rules over a property store. It is stateless
// apart from the evaluator it consults; one Replacer may be reused across
// runs, but a single store must only be handed to one run at a time.
type Replacer struct {
	evaluator eval.Evaluator
}

// New creates a Replacer using the given expression evaluator. A nil
// evaluator degrades to no expression resolution.
func New(evaluator eval.Evaluator) *Replacer {
	if evaluator == nil {
		evaluator = eval.Nop{}
	}
	return &Replacer{evaluator: evaluator}
}

// PerformReplacement applies rules to store in configured order, mutating
// the store in place. Rules without a target property visit a snapshot of
// the keys present when that rule starts, so keys created by the rule's own
// output suffix are not revisited. Later rules observe all earlier writes.
//
// The only error returned is an invalid regex pattern in a regex-mode rule;
// every other problem is logged and degraded per key.
func (r *Replacer) PerformReplacement(ctx context.Context, store props.Store, rules []Rule) error {
	if store == nil || len(rules) == 0 {
		return nil
	}
	for _, rule := range rules {
		if rule.Property == nil {
			// Snapshot taken once per rule, not re-read mid-pass.
			for _, key := range store.Keys() {
				if err := r.applyToKey(ctx, store, rule, key); err != nil {
					return err
				}
			}
		} else {
			if err := r.applyToKey(ctx, store, rule, *rule.Property); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyToKey runs the executor for one key and writes the result back,
// either over the key itself or to the suffixed output key.
func (r *Replacer) applyToKey(ctx context.Context, store props.Store, rule Rule, key string) error {
	logger := zerolog.Ctx(ctx)

	content, _ := store.Get(key)
	result, err := r.perform(ctx, rule, content)
	if err != nil {
		return err
	}

	target := key
	if suffix := rule.outputSuffix(); suffix != "" {
		target = key + "." + suffix
	}
	store.Set(target, result)
	logger.Info().
		Str("property", key).
		Str("target", target).
		Str("original", content).
		Str("result", result).
		Msg("applied replacement on property")
	return nil
}

// perform is the per-rule, per-content executor: evaluation input selection,
// expression evaluation with fallback, BEFORE transformations, token
// substitution, AFTER transformations.
func (r *Replacer) perform(ctx context.Context, rule Rule, content string) (string, error) {
	logger := zerolog.Ctx(ctx)

	input := content
	if input == "" || rule.ForceValueEvaluation {
		input = rule.value()
	}

	result := input
	if evaluated, err := r.evaluator.Evaluate(input); err != nil {
		// Evaluation failures never abort the pipeline.
		logger.Error().Err(err).Str("input", input).Msg("evaluating replacement input")
	} else if evaluated != nil {
		result = fmt.Sprintf("%v", evaluated)
	}

	result = applyTransformations(rule.TransformationRules, result, PhaseBefore)

	var err error
	if rule.Regex {
		result, err = replaceRegex(ctx, result, rule.Token, rule.value())
		if err != nil {
			return "", err
		}
	} else {
		result = replaceLiteral(ctx, result, rule.Token, rule.value())
	}

	return applyTransformations(rule.TransformationRules, result, PhaseAfter), nil
}

func applyTransformations(rules []TransformationRule, content string, phase Phase) string {
	result := content
	for _, tr := range rules {
		if tr.Phase == phase && tr.Action != nil {
			result = tr.Action.Apply(result)
		}
	}
	return result
}

// replaceRegex replaces all pattern matches. An invalid pattern is a
// configuration error and surfaces to the caller.
func replaceRegex(ctx context.Context, content string, token *string, value string) (string, error) {
	if token == nil {
		zerolog.Ctx(ctx).Error().Msg("found replacement rule without required token")
		return content, nil
	}
	pattern, err := regexp.Compile(*token)
	if err != nil {
		return "", errors.Errorf("compiling token pattern %q: %w", *token, err)
	}
	return pattern.ReplaceAllString(content, value), nil
}

// replaceLiteral replaces all literal occurrences of token.
func replaceLiteral(ctx context.Context, content string, token *string, value string) string {
	if token == nil {
		zerolog.Ctx(ctx).Error().Msg("found replacement rule without required token")
		return content
	}
	return strings.ReplaceAll(content, *token, value)
}
