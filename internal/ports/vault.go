package ports

// File is a handle to a tracked file inside the vault.
type File struct {
	Path      string // vault-relative, slash-delimited
	Basename  string // last segment without extension
	Extension string // extension without the leading dot
}

// Vault is the host file-tree the tracker observes.
type Vault interface {
	// Resolve returns a handle for a vault-relative path, or nil when the
	// path no longer names a file.
	Resolve(path string) *File
}

// RenameHandler receives rename notifications from a vault watcher.
type RenameHandler interface {
	HandleRename(file *File, oldPath string)
}
