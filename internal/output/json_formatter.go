package output

import (
	"encoding/json"

	"github.com/eei/returns-calculator/internal/domain"
)

// JSONFormatter serializes the result with both raw and display values,
// detail lines included.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

type jsonLine struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Display string `json:"display"`
	Detail  bool   `json:"detail,omitempty"`
}

type jsonResult struct {
	Heading string     `json:"heading,omitempty"`
	Lines   []jsonLine `json:"lines"`
	Note    string     `json:"note,omitempty"`
	Message string     `json:"message,omitempty"`
}

func (j JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	out := jsonResult{
		Heading: result.Heading,
		Lines:   make([]jsonLine, 0, len(result.Lines)),
		Note:    result.Note,
		Message: result.Message,
	}
	for _, l := range result.Lines {
		out.Lines = append(out.Lines, jsonLine{
			Key:     l.Key,
			Label:   l.Label,
			Kind:    l.Kind.String(),
			Value:   l.Value.String(),
			Display: FormatValue(l),
			Detail:  l.Detail,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
