package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/numfmt/internal/output"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"gopkg.in/yaml.v3"
)

// MaxDecimals bounds every configured precision. float64 carries about 15
// significant decimal digits.
const MaxDecimals = 15

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration holds the settings of the numfmt command.
type Configuration struct {
	Decimals     int                `yaml:"decimals"`
	Format       string             `yaml:"format"`
	Abbreviation AbbreviationConfig `yaml:"abbreviation"`
}

// AbbreviationConfig customizes the abbreviated formatter. Nil sign
// markers keep the defaults of numfmt.DefaultAbbreviator.
type AbbreviationConfig struct {
	NegativePrefix *string       `yaml:"negative_prefix"`
	NegativeSuffix *string       `yaml:"negative_suffix"`
	Legacy         bool          `yaml:"legacy"`
	Scales         []ScaleConfig `yaml:"scales"`
}

// ScaleConfig is the YAML form of numfmt.Scale.
type ScaleConfig struct {
	Threshold float64 `yaml:"threshold"`
	Suffix    string  `yaml:"suffix"`
	Decimals  int     `yaml:"decimals"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Decimals: 2,
		Format:   "text",
	}
}

// Abbreviator builds the numfmt.Abbreviator described by the configuration.
func (c *Configuration) Abbreviator() numfmt.Abbreviator {
	a := numfmt.DefaultAbbreviator()
	if c.Abbreviation.NegativePrefix != nil {
		a.NegativePrefix = *c.Abbreviation.NegativePrefix
	}
	if c.Abbreviation.NegativeSuffix != nil {
		a.NegativeSuffix = *c.Abbreviation.NegativeSuffix
	}
	a.Legacy = c.Abbreviation.Legacy
	if len(c.Abbreviation.Scales) > 0 {
		a.Scales = make([]numfmt.Scale, 0, len(c.Abbreviation.Scales))
		for _, s := range c.Abbreviation.Scales {
			a.Scales = append(a.Scales, numfmt.Scale{Threshold: s.Threshold, Suffix: s.Suffix, Decimals: s.Decimals})
		}
	}
	return a
}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their Default values.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := validateDecimals("decimals", config.Decimals); err != nil {
		return err
	}

	if output.GetFormatterByName(config.Format) == nil {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, config.Format)
	}

	for i, s := range config.Abbreviation.Scales {
		if s.Threshold <= 0 {
			return fmt.Errorf("%w: scale %d: threshold must be positive", ErrInvalidConfig, i)
		}
		if i > 0 && s.Threshold >= config.Abbreviation.Scales[i-1].Threshold {
			return fmt.Errorf("%w: scale %d: thresholds must be in descending order", ErrInvalidConfig, i)
		}
		if err := validateDecimals(fmt.Sprintf("scale %d: decimals", i), s.Decimals); err != nil {
			return err
		}
	}

	return nil
}

func validateDecimals(field string, decimals int) error {
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("%w: %s must be between 0 and %d", ErrInvalidConfig, field, MaxDecimals)
	}
	return nil
}
