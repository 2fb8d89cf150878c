package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/numfmt/pkg/numfmt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, 2, config.Decimals)
	assert.Equal(t, "text", config.Format)
	assert.NoError(t, NewInputParser().ValidateConfiguration(config))
	assert.Equal(t, numfmt.DefaultAbbreviator(), config.Abbreviator())
}

func TestLoadFromFile_Success(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "example_config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, config.Decimals)
	assert.Equal(t, "json", config.Format)
	require.Len(t, config.Abbreviation.Scales, 4)
	assert.Equal(t, 1000.0, config.Abbreviation.Scales[3].Threshold)

	a := config.Abbreviator()
	assert.True(t, a.Legacy)
	assert.Equal(t, "", a.NegativePrefix)
	assert.Equal(t, " owed", a.NegativeSuffix)
	assert.Equal(t, "3.4 thousand owed", a.Format(-3400, 2))
	assert.Equal(t, "2.5 billion", a.Format(2.5e9, 0))
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeConfig(t, "format: csv\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, config.Decimals)
	assert.Equal(t, "csv", config.Format)
	assert.Nil(t, config.Abbreviation.Scales)
	assert.Equal(t, numfmt.IncomeSuffix, config.Abbreviator().NegativeSuffix)
}

func TestLoadFromFile_EmptySuffixDisablesIncomeLabel(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeConfig(t, "abbreviation:\n  negative_suffix: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "500", config.Abbreviator().Format(-500, 0))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeConfig(t, "decimals: [1, 2\n"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeConfig(t, "decimals: 20\n"))

	assert.Nil(t, config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Configuration)
		wantErr string
	}{
		{"defaults", func(*Configuration) {}, ""},
		{"format alias", func(c *Configuration) { c.Format = "plain" }, ""},
		{"max decimals", func(c *Configuration) { c.Decimals = MaxDecimals }, ""},
		{"negative decimals", func(c *Configuration) { c.Decimals = -1 }, "decimals must be between 0 and 15"},
		{"too many decimals", func(c *Configuration) { c.Decimals = 16 }, "decimals must be between 0 and 15"},
		{"unknown format", func(c *Configuration) { c.Format = "html" }, `unknown format "html"`},
		{"zero threshold", func(c *Configuration) {
			c.Abbreviation.Scales = []ScaleConfig{{Threshold: 0, Suffix: "x"}}
		}, "scale 0: threshold must be positive"},
		{"ascending thresholds", func(c *Configuration) {
			c.Abbreviation.Scales = []ScaleConfig{{Threshold: 1e3, Suffix: "K"}, {Threshold: 1e6, Suffix: "M"}}
		}, "scale 1: thresholds must be in descending order"},
		{"scale decimals", func(c *Configuration) {
			c.Abbreviation.Scales = []ScaleConfig{{Threshold: 1e6, Suffix: "M", Decimals: -2}}
		}, "scale 0: decimals must be between 0 and 15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			err := NewInputParser().ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
