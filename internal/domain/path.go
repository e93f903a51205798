package domain

import "strings"

// Basename returns the last slash-delimited segment of a vault-relative path
// with its trailing extension stripped. A segment whose only dot is the first
// character (dotfiles) is returned whole, as is a segment with no dot.
func Basename(path string) string {
	seg := path
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.LastIndexByte(seg, '.'); i > 0 {
		seg = seg[:i]
	}
	return seg
}

// ParentName returns the name of the segment immediately enclosing the last
// one, or "" when the path has no parent segment (file at vault root).
func ParentName(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	dir := path[:i]
	if j := strings.LastIndexByte(dir, '/'); j >= 0 {
		dir = dir[j+1:]
	}
	return dir
}
