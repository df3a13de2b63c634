// Package report prints resolved records and the diagnostic dump.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
	"go.trai.ch/lnms-install/internal/ui/output"
	"go.trai.ch/lnms-install/internal/ui/style"
)

// Reporter implements ports.Reporter.
type Reporter struct {
	out     *termenv.Output
	columns int
	width   int
}

// New creates a Reporter writing to stdout, sized from settings.
func New(settings domain.Settings) *Reporter {
	return NewWithWriter(os.Stdout, settings)
}

// NewWithWriter creates a Reporter writing to w.
func NewWithWriter(w io.Writer, settings domain.Settings) *Reporter {
	columns := settings.Columns
	if columns <= 0 {
		columns = domain.DefaultColumns
	}
	width := settings.FormatWidth
	if width <= 0 {
		width = domain.DefaultFormatWidth
	}
	return &Reporter{
		out:     output.New(w),
		columns: columns,
		width:   width,
	}
}

// Report prints the record's summary lines.
func (r *Reporter) Report(record domain.Record) error {
	for _, line := range record.Summary() {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Debug prints the diagnostic dump: a heading, a rule as wide as the terminal
// and one block of aligned key/value lines per section.
func (r *Reporter) Debug(sections []ports.DebugSection) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.heading("DEBUG INFO"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", r.columns))
	b.WriteString("\n")

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.heading(section.Title + ":"))
		b.WriteString("\n")
		for _, field := range section.Fields {
			fmt.Fprintf(&b, "\t%-*s %s\n", r.width, field.Name, field.Value)
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Reporter) heading(text string) string {
	return r.out.String(text).Foreground(termenv.RGBColor(string(style.Iris))).Bold().String()
}
