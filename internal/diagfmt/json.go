package diagfmt

import (
	"encoding/json"
	"io"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// DiagnosticJSON is the wire shape one diagnostic serializes to.
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path,omitempty"`
	Line     uint32     `json:"line,omitempty"`
	Col      uint32     `json:"col,omitempty"`
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// NoteJSON is one diagnostic note.
type NoteJSON struct {
	Path string `json:"path,omitempty"`
	Line uint32 `json:"line,omitempty"`
	Col  uint32 `json:"col,omitempty"`
	Msg  string `json:"message"`
}

// JSON writes bag as a JSON array of DiagnosticJSON to w.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, toJSON(d, fs, opts))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(d diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: severityName(d.Severity),
		Code:     d.Code.String(),
		Message:  d.Message,
	}
	if opts.IncludePositions && fs != nil {
		path, line, col := locate(d.Primary, fs, opts.PathMode)
		out.Path, out.Line, out.Col = path, line, col
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			nj := NoteJSON{Msg: n.Msg}
			if opts.IncludePositions && fs != nil {
				nj.Path, nj.Line, nj.Col = locate(n.Span, fs, opts.PathMode)
			}
			out.Notes = append(out.Notes, nj)
		}
	}
	return out
}

func severityName(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}
