package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per result after a header row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"command", "input", "output"}); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Command, r.Input, r.Output}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
