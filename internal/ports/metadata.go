package ports

// Metadata is a mutable view over a file's structured front matter, scoped to
// the operations the alias list needs.
type Metadata interface {
	// HasList reports whether key exists and holds a list value.
	HasList(key string) bool
	// StringList returns the string entries of a list-valued key in order.
	// Missing keys and non-list values yield (nil, false).
	StringList(key string) ([]string, bool)
	// SetStringList replaces (or creates) key with the given values,
	// preserving their order.
	SetStringList(key string, values []string)
}

// MetadataEditor grants transactional access to a file's front matter.
type MetadataEditor interface {
	// Update invokes mutate with exclusive access to the file's metadata.
	// Changes persist only when mutate returns true; returning false
	// discards the transaction without touching the file.
	Update(path string, mutate func(meta Metadata) bool) error
	// Read invokes view with read-only access to the file's metadata.
	Read(path string, view func(meta Metadata)) error
}
