package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultVaultPath = "~/Documents/vault"

// FileName is the settings file kept at the vault root.
const FileName = ".aliashist.yaml"

// Debounce bounds in seconds.
const (
	MinDebounceSeconds = 1
	MaxDebounceSeconds = 20
)

// Chain policies for multi-rename bursts.
const (
	// ChainFirst keeps only the first-ever queued name through a chain of
	// rapid renames.
	ChainFirst = "first"
	// ChainAll accumulates every intermediate name.
	ChainAll = "all"
)

// Settings is the flat persisted configuration.
type Settings struct {
	IgnorePatterns        []string `yaml:"ignore_patterns"`
	DebounceSeconds       int      `yaml:"debounce_seconds"`
	CaseSensitive         bool     `yaml:"case_sensitive"`
	AutoCreateFrontmatter bool     `yaml:"auto_create_frontmatter"`
	IncludeFolders        []string `yaml:"include_folders"`
	ExcludeFolders        []string `yaml:"exclude_folders"`
	TrackedExtensions     []string `yaml:"tracked_extensions"`
	TrackFolderRenames    bool     `yaml:"track_folder_renames"`
	// FolderNoteName, when non-empty, restricts folder-rename tracking to
	// files whose current basename equals it under the active case policy.
	FolderNoteName string `yaml:"folder_note_name"`
	ChainPolicy    string `yaml:"chain_policy"`
}

// Default returns the settings used when nothing is persisted yet.
func Default() Settings {
	return Settings{
		DebounceSeconds:       3,
		AutoCreateFrontmatter: true,
		TrackedExtensions:     []string{"md"},
		ChainPolicy:           ChainFirst,
	}
}

// Debounce returns the quiet period as a duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceSeconds) * time.Second
}

// Clamp forces out-of-range or unknown values back to usable ones.
func (s Settings) Clamp() Settings {
	if s.DebounceSeconds < MinDebounceSeconds {
		s.DebounceSeconds = MinDebounceSeconds
	}
	if s.DebounceSeconds > MaxDebounceSeconds {
		s.DebounceSeconds = MaxDebounceSeconds
	}
	if s.ChainPolicy != ChainFirst && s.ChainPolicy != ChainAll {
		s.ChainPolicy = ChainFirst
	}
	if len(s.TrackedExtensions) == 0 {
		s.TrackedExtensions = []string{"md"}
	}
	return s
}

// Load reads the settings file at the vault root, merged over defaults.
// A missing file yields the defaults without error.
func Load(vaultPath string) (Settings, error) {
	settings := Default()
	data, err := os.ReadFile(filepath.Join(vaultPath, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("%s: %w", FileName, err)
	}
	return settings.Clamp(), nil
}

// Save persists the settings file at the vault root.
func Save(vaultPath string, settings Settings) error {
	data, err := yaml.Marshal(settings.Clamp())
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(vaultPath, FileName), data, 0o644)
}

// Path returns the full settings file path for a vault.
func Path(vaultPath string) string {
	return filepath.Join(vaultPath, FileName)
}

// VaultPath returns the vault path from the ALIASHIST_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("ALIASHIST_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}
