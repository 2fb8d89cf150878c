package output

import "strings"

// TextFormatter prints each output on its own line, ready for shell pipelines.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(results []Result) ([]byte, error) {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Output)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
