package driver

import (
	"context"
	"path/filepath"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/entity"
	"lumen/internal/project"
	"lumen/internal/source"
	"lumen/internal/token"
	"lumen/internal/types"
	"lumen/internal/universe"
)

func buildOneConstFile(b *ast.Builder) ast.FileID {
	lit := b.Exprs.NewLiteral(token.Token{Kind: token.IntLit, Text: "1"})
	decl := b.Decls.NewValue([]token.Token{{Kind: token.Ident, Text: "x"}}, ast.NoExprID, []ast.ExprID{lit}, source.Span{})
	file := b.NewFile("main.lumen")
	b.Files.SetDecls(file, []ast.DeclID{decl})
	return file
}

func newTestDriver() (*Driver, ast.FileID) {
	b := ast.NewBuilder()
	table := entity.NewTable(entity.Hints{}, nil, nil)
	uni := universe.New(table, types.DefaultSizes())
	file := buildOneConstFile(b)
	d := New(b, table, uni, Options{Sizes: types.DefaultSizes()})
	return d, file
}

func TestRunChecksAFreshDigest(t *testing.T) {
	d, file := newTestDriver()
	combined := project.HashBytes([]byte("x :: 1"))

	res := d.Run([]ast.FileID{file}, combined)
	if res.CacheHit {
		t.Fatalf("expected a fresh run, got a cache hit")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Bag.Items())
	}
}

func TestRunHitsCacheOnRepeatedDigest(t *testing.T) {
	d, file := newTestDriver()
	cachePath := filepath.Join(t.TempDir(), "cache.msgpack")
	cache, err := LoadCache(cachePath)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	d.Opts.Cache = cache

	combined := project.HashBytes([]byte("x :: 1"))
	first := d.Run([]ast.FileID{file}, combined)
	if first.CacheHit {
		t.Fatalf("first run should not be a cache hit")
	}

	second := d.Run([]ast.FileID{file}, combined)
	if !second.CacheHit {
		t.Fatalf("second run with the same digest should hit the cache")
	}
	if errs, _ := second.CachedCounts(); errs != 0 {
		t.Fatalf("expected zero cached errors, got %d", errs)
	}
}

func TestHashFilesIsDeterministic(t *testing.T) {
	inputs := []FileInput{
		{Path: "a.lumen", Content: []byte("a")},
		{Path: "b.lumen", Content: []byte("b")},
	}
	first, err := HashFiles(context.Background(), 0, inputs)
	if err != nil {
		t.Fatalf("HashFiles: %v", err)
	}
	second, err := HashFiles(context.Background(), 0, inputs)
	if err != nil {
		t.Fatalf("HashFiles: %v", err)
	}
	if first["a.lumen"] != second["a.lumen"] || first["b.lumen"] != second["b.lumen"] {
		t.Fatalf("expected identical content to hash identically across runs")
	}
	if first["a.lumen"] == first["b.lumen"] {
		t.Fatalf("expected distinct content to hash differently")
	}
}
