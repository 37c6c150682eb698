package project

import (
	"os"
	"path/filepath"
	"testing"

	"lumen/internal/types"
)

func TestLoadManifestDefaultsSizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	if err := os.WriteFile(path, []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Fatalf("got package name %q, want %q", m.Package.Name, "demo")
	}
	if got, want := m.ResolveSizes(), types.DefaultSizes(); got != want {
		t.Fatalf("ResolveSizes() = %+v, want default %+v", got, want)
	}
}

func TestLoadManifestAppliesSizeOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	contents := "[package]\nname = \"demo\"\n\n[sizes]\nword_size = 4\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	sizes := m.ResolveSizes()
	if sizes.WordSize != 4 {
		t.Fatalf("got word size %d, want 4", sizes.WordSize)
	}
	if sizes.MaxAlign != types.DefaultSizes().MaxAlign {
		t.Fatalf("max align should fall back to default when unset, got %d", sizes.MaxAlign)
	}
}

func TestLoadManifestRejectsMissingPackageSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	if err := os.WriteFile(path, []byte("[sizes]\nword_size = 8\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected an error for a manifest with no [package] table")
	}
}

func TestIsValidPackageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"demo", true},
		{"_demo", true},
		{"demo_2", true},
		{"2demo", false},
		{"de mo", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidPackageName(tt.name); got != tt.want {
			t.Errorf("IsValidPackageName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindManifestWalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "lumen.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find a manifest walking up from %s", nested)
	}
	want := filepath.Join(root, "lumen.toml")
	if found != want {
		t.Fatalf("FindManifest = %q, want %q", found, want)
	}
}
