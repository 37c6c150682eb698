// Package diagfmt renders a diag.Bag for a human (colorized, source-quoting
// pretty output) or a machine (JSON), the way the teacher's diagfmt package
// renders its own bag against a FileSet.
package diagfmt

// PathMode controls how a diagnostic's file path is displayed.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int // extra lines of source shown above/below the primary span
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	IncludeNotes     bool
}
