package domain

import "strings"

// RootWildcard marks a folder spec that targets only the vault root.
const RootWildcard = "*"

// InFolder reports whether path lives inside the given folder.
// A folder value reducing to empty or "/" after trimming the root wildcard
// matches only paths with no slash, i.e. files directly at the vault root.
func InFolder(path, folder string) bool {
	if trimmed := strings.TrimSuffix(folder, RootWildcard); trimmed != folder {
		if trimmed == "" || trimmed == "/" {
			return !strings.ContainsRune(path, '/')
		}
		folder = strings.TrimSuffix(trimmed, "/")
	}
	return path == folder || strings.HasPrefix(path, folder+"/")
}

// InScope applies the include/exclude folder lists to a path.
// An empty include list admits everything; any exclude match rejects.
func InScope(path string, include, exclude []string) bool {
	if len(include) > 0 {
		included := false
		for _, folder := range include {
			if InFolder(path, folder) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, folder := range exclude {
		if InFolder(path, folder) {
			return false
		}
	}
	return true
}
