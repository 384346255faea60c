package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/eei/returns-calculator/internal/domain"
)

// ConsoleFormatter renders a result as plain text for a terminal. Like the
// HTML panel it shows only the headline lines.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	if result.IsMessage() {
		fmt.Fprintln(&buf, result.Message)
		return buf.Bytes(), nil
	}
	fmt.Fprintln(&buf, result.Heading)
	fmt.Fprintln(&buf, strings.Repeat("=", utf8.RuneCountInString(result.Heading)))
	for _, l := range result.Lines {
		if l.Detail {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\n", l.Label, FormatValue(l))
	}
	if result.Note != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, result.Note)
	}
	return buf.Bytes(), nil
}
