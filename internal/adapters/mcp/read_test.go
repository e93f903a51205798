package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"aliashist/internal/adapters/filesystem"
	"aliashist/internal/config"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectStatus(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.md", "no aliases here\n")
	writeFile(t, root, "projects/renamed.md", "---\naliases:\n  - old\n  - older\n---\nbody\n")
	writeFile(t, root, "projects/also.md", "---\naliases:\n  - prior\n---\n")
	writeFile(t, root, "image.png", "")
	writeFile(t, root, ".obsidian/skipped.md", "---\naliases:\n  - hidden\n---\n")

	vault := filesystem.NewVault(root)
	editor := filesystem.NewEditor(vault)

	status, err := collectStatus(root, editor, config.Default())
	if err != nil {
		t.Fatalf("collectStatus() error = %v", err)
	}

	if status.tracked != 3 {
		t.Errorf("tracked = %d, want 3", status.tracked)
	}
	if status.aliased != 2 {
		t.Errorf("aliased = %d, want 2", status.aliased)
	}
	if status.aliases != 3 {
		t.Errorf("aliases = %d, want 3", status.aliases)
	}
}

func TestCollectStatusEmptyVault(t *testing.T) {
	root := t.TempDir()
	vault := filesystem.NewVault(root)
	editor := filesystem.NewEditor(vault)

	status, err := collectStatus(root, editor, config.Default())
	if err != nil {
		t.Fatalf("collectStatus() error = %v", err)
	}
	if status.tracked != 0 || status.aliased != 0 || status.aliases != 0 {
		t.Errorf("status = %+v, want zero counts", status)
	}
}
