package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"concatident/internal/diag"
	"concatident/internal/source"
)

const tabWidth = 4

type palette struct {
	err    *color.Color
	warn   *color.Color
	info   *color.Color
	code   *color.Color
	path   *color.Color
	gutter *color.Color
	caret  *color.Color
	help   *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		path:   mk(color.FgWhite, color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		help:   mk(color.FgGreen),
	}
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
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(w, f, start, end, opts, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			if help, ok := strings.CutPrefix(note.Msg, "help: "); ok {
				fmt.Fprintf(w, "  %s %s\n", pal.help.Sprint("= help:"), help)
				continue
			}
			nf := fs.Get(note.Span.File)
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s: %s\n",
				pal.gutter.Sprint("note:"),
				pal.path.Sprintf("%s:%d:%d", formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col),
				note.Msg,
			)
		}
	}
}

// Short печатает по одной строке на диагностику, в формате go vet.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(f, fs, mode), start.Line, start.Col,
			d.Severity.Label(), d.Code.ID(), d.Message)
	}
}

func lineCount(f *source.File) uint32 {
	n := uint32(len(f.LineIdx))
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts, pal palette) {
	ctx := uint32(max(opts.Context, 0))
	first := uint32(1)
	if start.Line > ctx+1 {
		first = start.Line - ctx
	}
	last := min(start.Line+ctx, max(lineCount(f), start.Line))
	gw := len(strconv.FormatUint(uint64(last), 10))
	pad := strings.Repeat(" ", gw)

	fmt.Fprintf(w, " %s %s\n", pad, pal.gutter.Sprint("|"))
	for n := first; n <= last; n++ {
		raw := f.GetLine(n)
		text := expandTabs(raw)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprintf("%*d", gw, n), pal.gutter.Sprint("|"), text)
		if n != start.Line {
			continue
		}
		from := clampCol(raw, start.Col)
		to := len(raw)
		if end.Line == start.Line {
			to = clampCol(raw, end.Col)
		}
		indent := runewidth.StringWidth(expandTabs(raw[:from]))
		width := max(runewidth.StringWidth(expandTabs(raw[from:max(from, to)])), 1)
		marks := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, " %s %s %s%s\n", pad, pal.gutter.Sprint("|"), strings.Repeat(" ", indent), pal.caret.Sprint(marks))
	}
}

func clampCol(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - width%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		b.WriteRune(r)
		width += runewidth.RuneWidth(r)
	}
	return b.String()
}
