package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnsupportedFormat is returned for formatter names that are not registered.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Result is one formatted value.
type Result struct {
	Command string `json:"command"`
	Input   string `json:"input"`
	Output  string `json:"output"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results []Result) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func([]Result) ([]byte, error)
}

func (ff FormatterFunc) Format(r []Result) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                      { return ff.ID }

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TextFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	FormatterFunc{ID: "tsv", F: formatTSV},
}

// formatTSV writes "input<TAB>output" lines, pairing each value with its
// rendering for tools like cut and awk.
func formatTSV(results []Result) ([]byte, error) {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Input)
		sb.WriteByte('\t')
		sb.WriteString(r.Output)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"plain":       "text",
	"txt":         "text",
	"console":     "text",
	"json-pretty": "json",
	"csv-summary": "csv",
	"tab":         "tsv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write renders results with the named formatter and writes them to w.
func Write(w io.Writer, format string, results []Result) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
