package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"lumen/internal/diag"
	"lumen/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.Faint)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// Pretty writes bag's diagnostics as human-readable text, one block per
// diagnostic: a "path:line:col: SEVERITY CODE: message" header, the quoted
// source line, and a caret underline beneath the primary span. Call
// bag.Sort() first for a deterministic, file-ordered report.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sevColor, sevText := severityStyle(d.Severity)
	path, line, col := locate(d.Primary, fs, opts.PathMode)

	header := fmt.Sprintf("%s:%d:%d: %s %s: %s", path, line, col, sevText, d.Code.String(), d.Message)
	if opts.Color {
		fmt.Fprintln(w, sevColor.Sprint(header))
	} else {
		fmt.Fprintln(w, header)
	}

	writeSourceLine(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			npath, nline, ncol := locate(n.Span, fs, opts.PathMode)
			note := fmt.Sprintf("  note: %s:%d:%d: %s", npath, nline, ncol, n.Msg)
			if opts.Color {
				fmt.Fprintln(w, dimColor.Sprint(note))
			} else {
				fmt.Fprintln(w, note)
			}
		}
	}
	fmt.Fprintln(w)
}

func severityStyle(sev diag.Severity) (*color.Color, string) {
	switch sev {
	case diag.SevError:
		return errorColor, "error"
	case diag.SevWarning:
		return warnColor, "warning"
	default:
		return infoColor, "note"
	}
}

func locate(span source.Span, fs *source.FileSet, mode PathMode) (path string, line, col uint32) {
	if fs == nil {
		return "<unknown>", 0, 0
	}
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return formatPath(f.Path, mode), start.Line, start.Col
}

func formatPath(p string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(p)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	default:
		return p
	}
}

// writeSourceLine prints the primary span's line of source followed by a
// caret underline. width.LookupRune's East-Asian width class is consulted
// so a double-width rune earlier on the line still lines the caret up under
// the right column, the same problem the teacher solves for terminal-width
// string intrinsics.
func writeSourceLine(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	text := f.GetLine(start.Line)
	if text == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", text)

	gutter := runeDisplayWidth(text, int(start.Col)-1)
	length := end.Col - start.Col
	if length == 0 {
		length = 1
	}
	underline := runeDisplayWidth(text, int(start.Col)-1+int(length)) - gutter

	caret := fmt.Sprintf("  %s%s", spaces(gutter), carets(underline))
	if opts.Color {
		fmt.Fprintln(w, caretColor.Sprint(caret))
	} else {
		fmt.Fprintln(w, caret)
	}
}

// runeDisplayWidth returns the terminal column width consumed by the runes
// that start within the first n bytes of s; n is a byte offset, like the
// byte-based LineCol.Col it is derived from.
func runeDisplayWidth(s string, n int) int {
	cols := 0
	for i, r := range s {
		if i >= n {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
	}
	return cols
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func carets(n int) string {
	if n < 1 {
		n = 1
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '^'
	}
	return string(b)
}
