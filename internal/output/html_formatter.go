package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/eei/returns-calculator/internal/domain"
)

// HTMLFormatter produces the result panel fragment shown under a form.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

//go:embed templates/result.html.tmpl
var panelTemplateSource string

// PanelTemplate is exported so page templates can embed the panel.
var PanelTemplate = template.Must(template.New("panel").Funcs(template.FuncMap{
	"value": FormatValue,
}).Parse(panelTemplateSource))

func (h HTMLFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := PanelTemplate.Execute(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPanel renders result as a safe HTML fragment. A nil result renders
// an empty panel.
func RenderPanel(result *domain.CalculationResult) (template.HTML, error) {
	if result == nil {
		return "", nil
	}
	b, err := HTMLFormatter{}.Format(result)
	if err != nil {
		return "", err
	}
	return template.HTML(b), nil
}
