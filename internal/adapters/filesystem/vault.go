package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"aliashist/internal/domain"
	"aliashist/internal/ports"
)

// Vault implements ports.Vault over a directory on disk. All handle paths are
// vault-relative with forward slashes.
type Vault struct {
	root string
}

// NewVault creates a filesystem vault rooted at vaultPath.
func NewVault(vaultPath string) *Vault {
	return &Vault{root: ExpandHome(vaultPath)}
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Root returns the absolute vault root.
func (v *Vault) Root() string {
	return v.root
}

// Resolve returns a handle for a vault-relative path, or nil when it no
// longer names a regular file.
func (v *Vault) Resolve(path string) *ports.File {
	info, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(path)))
	if err != nil || info.IsDir() {
		return nil
	}
	return v.fileFor(path)
}

// Relative converts an absolute path inside the vault to a vault-relative
// slash path. ok is false for paths outside the vault.
func (v *Vault) Relative(absPath string) (string, bool) {
	rel, err := filepath.Rel(v.root, absPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (v *Vault) fileFor(path string) *ports.File {
	return &ports.File{
		Path:      path,
		Basename:  domain.Basename(path),
		Extension: extensionOf(path),
	}
}

func extensionOf(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimPrefix(ext, ".")
}
