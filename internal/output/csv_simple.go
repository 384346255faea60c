package output

import (
	"bytes"
	"encoding/csv"

	"github.com/eei/returns-calculator/internal/domain"
)

// CSVSummarizer writes one row per result line, detail lines included.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }
func (c CSVSummarizer) Ext() string  { return "csv" }

func (c CSVSummarizer) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Key", "Label", "Kind", "Value", "Display"}); err != nil {
		return nil, err
	}
	if result.IsMessage() {
		if err := w.Write([]string{"", result.Message, "message", "", ""}); err != nil {
			return nil, err
		}
	}
	for _, l := range result.Lines {
		row := []string{l.Key, l.Label, l.Kind.String(), l.Value.StringFixed(2), FormatValue(l)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
