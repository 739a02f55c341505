package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"scooter/internal/diag"
	"scooter/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | let x: i32 = true;
//	     |              ^~~~
//
// Notes печатаются следом, если включены.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			location(fs, d.Primary, opts.PathMode, opts.BaseDir),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		snippet(w, fs, d.Primary, opts.Context, p)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"),
				location(fs, n.Span, opts.PathMode, opts.BaseDir), n.Msg)
		}
	}
}

// Short prints one line per diagnostic.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			location(fs, d.Primary, opts.PathMode, opts.BaseDir),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(), d.Message)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode, baseDir string) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, mode, baseDir), start.Line, start.Col)
}

func snippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, p palette) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	ctx := uint32(max(context, 0))
	first := start.Line - min(ctx, start.Line-1)
	last := start.Line + ctx
	gutter := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		if ln != start.Line && text == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutter+2, ln), expandTabs(text))
		if ln != start.Line {
			continue
		}
		lineEnd := uint32(len(text)) + 1
		if end.Line == start.Line {
			lineEnd = max(end.Col, start.Col)
		}
		pad, width := caretColumns(text, start.Col, lineEnd)
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutter+2, ""),
			strings.Repeat(" ", pad), p.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// caretColumns переводит байтовые колонки [from, to) в ширину на экране.
func caretColumns(line string, from, to uint32) (pad, width int) {
	from = min(from, uint32(len(line))+1)
	to = min(max(to, from), uint32(len(line))+1)
	prefix := expandTabs(line[:from-1])
	marked := expandTabs(line[from-1 : to-1])
	return runewidth.StringWidth(prefix), max(runewidth.StringWidth(marked), 1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
