package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeTempConfig(t, "rules.yaml", `
replacements:
  - property: version
    token: "-SNAPSHOT"
    value: ""
  - token: "[0-9]+"
    value: "#"
    regex: true
    propertyOutputSuffix: masked
    transformationRules:
      - apply: BEFORE
        action: LOWER_CASE
      - apply: AFTER
        action: UPPER_CASE
`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Replacements, 2)
	assert.Equal(t, path, cfg.Location())

	first := cfg.Replacements[0]
	require.NotNil(t, first.Property)
	assert.Equal(t, "version", *first.Property)
	require.NotNil(t, first.Token)
	assert.Equal(t, "-SNAPSHOT", *first.Token)
	require.NotNil(t, first.Value)
	assert.Empty(t, *first.Value)
	assert.False(t, first.Regex)

	second := cfg.Replacements[1]
	assert.Nil(t, second.Property, "absent property must stay absent")
	assert.True(t, second.Regex)
	assert.Equal(t, "masked", second.PropertyOutputSuffix)
	require.Len(t, second.TransformationRules, 2)
	assert.Equal(t, "BEFORE", second.TransformationRules[0].Apply)
	assert.Equal(t, "LOWER_CASE", second.TransformationRules[0].Action)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeTempConfig(t, "rules.json", `{
  "replacements": [
    {
      "property": "greeting",
      "token": "world",
      "value": "there"
    }
  ]
}`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Replacements, 1)
	require.NotNil(t, cfg.Replacements[0].Property)
	assert.Equal(t, "greeting", *cfg.Replacements[0].Property)
}

func TestLoadConfig_JSONRejectsUnknownFields(t *testing.T) {
	path := writeTempConfig(t, "rules.json", `{"replacements": [{"tokenn": "typo"}]}`)

	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestLoadConfig_HCL(t *testing.T) {
	path := writeTempConfig(t, "rules.hcl", `
replacement {
  property = "version"
  token    = "-SNAPSHOT"
  value    = ""
}

replacement {
  token                  = "[0-9]+"
  value                  = "#"
  regex                  = true
  property_output_suffix = "masked"

  transformation {
    apply  = "BEFORE"
    action = "LOWER_CASE"
  }
}
`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cfg.Replacements, 2)
	assert.Nil(t, cfg.Replacements[1].Property)
	assert.True(t, cfg.Replacements[1].Regex)
	require.Len(t, cfg.Replacements[1].TransformationRules, 1)
	assert.Equal(t, "LOWER_CASE", cfg.Replacements[1].TransformationRules[0].Action)
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "rules.toml", "anything")

	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeTempConfig(t, "rules.yaml", `
replacements:
  - token: x
    transformationRules:
      - apply: DURING
        action: LOWER_CASE
`)

	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply must be BEFORE or AFTER")
}
