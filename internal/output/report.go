package output

import (
	"io"

	"github.com/eei/returns-calculator/internal/domain"
)

// WriteReport formats result with the named formatter and writes it to w.
func WriteReport(w io.Writer, result *domain.CalculationResult, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
