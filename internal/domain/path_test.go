package domain

import "testing"

func TestBasename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "root level file",
			path: "note.md",
			want: "note",
		},
		{
			name: "nested file",
			path: "projects/note.md",
			want: "note",
		},
		{
			name: "only last extension stripped",
			path: "a/b.c.md",
			want: "b.c",
		},
		{
			name: "no extension",
			path: "a/README",
			want: "README",
		},
		{
			name: "dotfile keeps its name",
			path: "a/.gitignore",
			want: ".gitignore",
		},
		{
			name: "empty path",
			path: "",
			want: "",
		},
		{
			name: "trailing slash",
			path: "a/",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Basename(tt.path); got != tt.want {
				t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParentName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "root level file has no parent",
			path: "file.md",
			want: "",
		},
		{
			name: "single parent",
			path: "a/file.md",
			want: "a",
		},
		{
			name: "immediate parent only",
			path: "a/b/file.md",
			want: "b",
		},
		{
			name: "empty path",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParentName(tt.path); got != tt.want {
				t.Errorf("ParentName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
