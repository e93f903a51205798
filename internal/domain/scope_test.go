package domain

import "testing"

func TestInFolder(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		folder string
		want   bool
	}{
		{
			name:   "exact folder match",
			path:   "projects",
			folder: "projects",
			want:   true,
		},
		{
			name:   "file inside folder",
			path:   "projects/note.md",
			folder: "projects",
			want:   true,
		},
		{
			name:   "nested file inside folder",
			path:   "projects/sub/note.md",
			folder: "projects",
			want:   true,
		},
		{
			name:   "prefix without separator does not match",
			path:   "projects-old/note.md",
			folder: "projects",
			want:   false,
		},
		{
			name:   "root wildcard admits root file",
			path:   "b.md",
			folder: "*",
			want:   true,
		},
		{
			name:   "root wildcard rejects nested file",
			path:   "a/b.md",
			folder: "*",
			want:   false,
		},
		{
			name:   "slash root wildcard admits root file",
			path:   "b.md",
			folder: "/*",
			want:   true,
		},
		{
			name:   "wildcard under folder matches folder contents",
			path:   "projects/note.md",
			folder: "projects/*",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InFolder(tt.path, tt.folder); got != tt.want {
				t.Errorf("InFolder(%q, %q) = %v, want %v", tt.path, tt.folder, got, tt.want)
			}
		})
	}
}

func TestInScope(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		include []string
		exclude []string
		want    bool
	}{
		{
			name: "empty lists admit everything",
			path: "anywhere/note.md",
			want: true,
		},
		{
			name:    "include match admits",
			path:    "projects/note.md",
			include: []string{"projects"},
			want:    true,
		},
		{
			name:    "no include match rejects",
			path:    "areas/note.md",
			include: []string{"projects"},
			want:    false,
		},
		{
			name:    "exclude overrides include",
			path:    "projects/archive/note.md",
			include: []string{"projects"},
			exclude: []string{"projects/archive"},
			want:    false,
		},
		{
			name:    "exclude alone rejects",
			path:    "templates/note.md",
			exclude: []string{"templates"},
			want:    false,
		},
		{
			name:    "root wildcard include excludes nested",
			path:    "a/b.md",
			include: []string{"*"},
			want:    false,
		},
		{
			name:    "root wildcard include admits root",
			path:    "b.md",
			include: []string{"*"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InScope(tt.path, tt.include, tt.exclude); got != tt.want {
				t.Errorf("InScope(%q, %v, %v) = %v, want %v", tt.path, tt.include, tt.exclude, got, tt.want)
			}
		})
	}
}
