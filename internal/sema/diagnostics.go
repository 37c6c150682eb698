package sema

import (
	"fmt"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// errorf reports a SevError diagnostic at span through c.Reporter, or
// silently drops it when the checker was built without a reporter (tests
// that only inspect side tables need not wire one up).
func (c *Checker) errorf(code diag.Code, span source.Span, format string, args ...any) {
	if c.Reporter == nil {
		return
	}
	c.Reporter.Report(code, diag.SevError, span, fmt.Sprintf(format, args...), nil, nil)
}

// warnf reports a SevWarning diagnostic.
func (c *Checker) warnf(code diag.Code, span source.Span, format string, args ...any) {
	if c.Reporter == nil {
		return
	}
	c.Reporter.Report(code, diag.SevWarning, span, fmt.Sprintf(format, args...), nil, nil)
}
