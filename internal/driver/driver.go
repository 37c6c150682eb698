// Package driver orchestrates one check run: collecting declarations from a
// set of already-parsed files, resolving them in dependency order, checking
// deferred procedure bodies, and finalizing untyped constants, against a
// cache that can skip the whole pipeline when nothing has changed since the
// last run.
package driver

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/entity"
	"lumen/internal/project"
	"lumen/internal/sema"
	"lumen/internal/types"
	"lumen/internal/ui"
	"lumen/internal/universe"
)

// Options configures one Run.
type Options struct {
	MaxDiagnostics int
	Sizes          types.Sizes
	Cache          *Cache // nil disables caching
}

// Result is everything a caller needs after a run: the diagnostics produced
// and, when the checker actually ran, the Checker carrying every side table
// a renderer or dumper would want to inspect.
type Result struct {
	Bag      *diag.Bag
	Checker  *sema.Checker // nil on a cache hit
	CacheHit bool

	cachedErrors   int
	cachedWarnings int
}

// Driver owns the shared symbol table and universe a check run resolves
// declarations against.
type Driver struct {
	Builder  *ast.Builder
	Table    *entity.Table
	Universe *universe.Universe
	Opts     Options
}

// New constructs a Driver. table and universe should share the same string
// and type interners, as entity.NewTable/universe.New already arrange.
func New(builder *ast.Builder, table *entity.Table, uni *universe.Universe, opts Options) *Driver {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 1024
	}
	return &Driver{Builder: builder, Table: table, Universe: uni, Opts: opts}
}

// Run checks every file in files. combined is the caller-computed digest
// (see CombineDigests) identifying this exact set of inputs; a hit in
// d.Opts.Cache skips straight to reporting the previous run's counts.
func (d *Driver) Run(files []ast.FileID, combined project.Digest) *Result {
	if entry, ok := d.Opts.Cache.Lookup(combined); ok {
		return &Result{
			Bag:            diag.NewBag(1),
			CacheHit:       true,
			cachedErrors:   entry.ErrorCount,
			cachedWarnings: entry.WarningCount,
		}
	}

	bag := diag.NewBag(d.Opts.MaxDiagnostics)
	checker := sema.NewChecker(d.Builder, d.Table, d.Universe, d.Opts.Sizes, diag.BagReporter{Bag: bag})
	checker.CheckFiles(files)
	bag.Sort()
	bag.Dedup()

	errs, warns := countBySeverity(bag)
	d.Opts.Cache.Store(combined, CacheEntry{ErrorCount: errs, WarningCount: warns})

	return &Result{Bag: bag, Checker: checker}
}

// RunWithProgress is Run's behavior spelled out stage by stage instead of
// through Checker.CheckFiles, so each file's Collect can be reported on
// progress before the shared Order/Bodies/Finalize passes run. It always
// closes progress before returning, including on a cache hit.
func (d *Driver) RunWithProgress(files []ast.FileID, paths []string, combined project.Digest, progress chan<- ui.Event) *Result {
	defer close(progress)

	if entry, ok := d.Opts.Cache.Lookup(combined); ok {
		return &Result{
			Bag:            diag.NewBag(1),
			CacheHit:       true,
			cachedErrors:   entry.ErrorCount,
			cachedWarnings: entry.WarningCount,
		}
	}

	bag := diag.NewBag(d.Opts.MaxDiagnostics)
	checker := sema.NewChecker(d.Builder, d.Table, d.Universe, d.Opts.Sizes, diag.BagReporter{Bag: bag})

	for i, f := range files {
		path := fileLabel(paths, i)
		progress <- ui.Event{File: path, Stage: ui.StageCollect, Status: ui.StatusWorking}
		checker.Collect(f)
		progress <- ui.Event{File: path, Stage: ui.StageCollect, Status: ui.StatusDone}
	}

	progress <- ui.Event{Stage: ui.StageOrder, Status: ui.StatusWorking}
	checker.Order()
	progress <- ui.Event{Stage: ui.StageBodies, Status: ui.StatusWorking}
	checker.CheckBodies()
	progress <- ui.Event{Stage: ui.StageFinalize, Status: ui.StatusWorking}
	checker.Finalize()

	for i := range files {
		progress <- ui.Event{File: fileLabel(paths, i), Stage: ui.StageFinalize, Status: ui.StatusDone}
	}

	bag.Sort()
	bag.Dedup()
	errs, warns := countBySeverity(bag)
	d.Opts.Cache.Store(combined, CacheEntry{ErrorCount: errs, WarningCount: warns})

	return &Result{Bag: bag, Checker: checker}
}

func fileLabel(paths []string, i int) string {
	if i < len(paths) {
		return paths[i]
	}
	return ""
}

func countBySeverity(bag *diag.Bag) (errors, warnings int) {
	for _, item := range bag.Items() {
		switch {
		case item.Severity >= diag.SevError:
			errors++
		case item.Severity >= diag.SevWarning:
			warnings++
		}
	}
	return errors, warnings
}

// CachedCounts returns the diagnostic counts from a prior run when CacheHit
// is true; both are zero otherwise.
func (r *Result) CachedCounts() (errors, warnings int) {
	return r.cachedErrors, r.cachedWarnings
}
