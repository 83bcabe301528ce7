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

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads a rule configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		cfg, err = loadJSON(data)
	case ".yaml", ".yml":
		cfg, err = loadYAML(data)
	case ".hcl":
		cfg, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadJSON loads a configuration from JSON data
func loadJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// loadYAML loads a configuration from YAML data
func loadYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// HCL uses its own tag namespace, so the HCL schema is declared separately
// and mapped onto Config after decoding.
type hclTransformation struct {
	Apply  string `hcl:"apply"`
	Action string `hcl:"action"`
}

type hclReplacement struct {
	Property             *string             `hcl:"property,optional"`
	Token                *string             `hcl:"token,optional"`
	Value                *string             `hcl:"value,optional"`
	Regex                bool                `hcl:"regex,optional"`
	ForceValueEvaluation bool                `hcl:"force_value_evaluation,optional"`
	PropertyOutputSuffix string              `hcl:"property_output_suffix,optional"`
	Transformations      []hclTransformation `hcl:"transformation,block"`
}

type hclConfig struct {
	Replacements []hclReplacement `hcl:"replacement,block"`
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{}

	var raw hclConfig
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &raw); diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{}
	for _, r := range raw.Replacements {
		replacement := Replacement{
			Property:             r.Property,
			Token:                r.Token,
			Value:                r.Value,
			Regex:                r.Regex,
			ForceValueEvaluation: r.ForceValueEvaluation,
			PropertyOutputSuffix: r.PropertyOutputSuffix,
		}
		for _, tr := range r.Transformations {
			replacement.TransformationRules = append(replacement.TransformationRules, TransformationRule{
				Apply:  tr.Apply,
				Action: tr.Action,
			})
		}
		cfg.Replacements = append(cfg.Replacements, replacement)
	}
	return cfg, nil
}
