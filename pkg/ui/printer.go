package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dedup/pkg/report"
	"github.com/arthur-debert/dedup/pkg/types"
)

// Printer writes the user-facing output in the selected format.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a printer for out. FormatAuto resolves against the
// writer: terminal detection for real files, plain text otherwise.
func NewPrinter(out io.Writer, format Format) *Printer {
	if format == FormatAuto {
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		} else {
			format = FormatText
		}
	}
	return &Printer{out: out, format: format}
}

// Format returns the resolved output format.
func (p *Printer) Format() Format {
	return p.format
}

// Action prints one verbose per-duplicate line.
func (p *Printer) Action(a types.Action) {
	if p.format == FormatJSON {
		// JSON output is a single document at the end of the run.
		return
	}
	if p.format != FormatTerminal {
		fmt.Fprintln(p.out, report.ActionLine(a))
		return
	}

	size := SizeStyle.Render(fmt.Sprintf("(%s)", report.FormatBytes(a.Size)))
	if a.Type == types.ActionRemove {
		fmt.Fprintf(p.out, "%s %s %s\n",
			size,
			RemoveStyle.Render("remove"),
			PathStyle.Render(fmt.Sprintf("%q", a.Duplicate)))
		return
	}
	fmt.Fprintf(p.out, "%s %s %s -> %s\n",
		size,
		LinkStyle.Render("link"),
		PathStyle.Render(fmt.Sprintf("%q", a.Duplicate)),
		PathStyle.Render(fmt.Sprintf("%q", a.LinkTarget)))
}

// Summary prints the end-of-run summary line.
func (p *Printer) Summary(stats *report.Stats, action types.ActionType) {
	if p.format == FormatJSON {
		return
	}
	line := report.Summary(stats, action)
	if p.format == FormatTerminal {
		line = SummaryStyle.Render(line)
	}
	fmt.Fprintln(p.out, line)
}

// JSON writes v as an indented JSON document.
func (p *Printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
