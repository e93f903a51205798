package application

import (
	"log/slog"
	"strings"

	"aliashist/internal/config"
	"aliashist/internal/domain"
	"aliashist/internal/ports"
)

// AliasKey is the front-matter key the alias list lives under.
const AliasKey = "aliases"

// Merger commits settled candidate names into a file's alias list.
type Merger struct {
	vault  ports.Vault
	editor ports.MetadataEditor
	logger *slog.Logger
}

// NewMerger creates a merger writing through the given vault and editor.
func NewMerger(vault ports.Vault, editor ports.MetadataEditor, logger *slog.Logger) *Merger {
	return &Merger{vault: vault, editor: editor, logger: logger}
}

// Settle merges candidate names into the alias list of the file at path.
// The ignore patterns run again here so patterns changed during the debounce
// window still apply, and a candidate equal to the file's current basename is
// dropped. A path that no longer resolves aborts silently: whatever rename or
// deletion invalidated it is authoritative.
func (m *Merger) Settle(path string, names []string, settings config.Settings) {
	file := m.vault.Resolve(path)
	if file == nil {
		return
	}

	patterns := domain.CompilePatterns(settings.IgnorePatterns, m.logger)
	survivors := make([]string, 0, len(names))
	for _, name := range names {
		if domain.MatchesAny(name, patterns) {
			continue
		}
		if domain.SameName(name, file.Basename, settings.CaseSensitive) {
			continue
		}
		survivors = append(survivors, name)
	}
	if len(survivors) == 0 {
		return
	}

	err := m.editor.Update(file.Path, func(meta ports.Metadata) bool {
		existing, ok := meta.StringList(AliasKey)
		if !ok && !settings.AutoCreateFrontmatter {
			// No list to extend and not allowed to create one.
			return false
		}

		seen := make(map[string]bool, len(existing))
		for _, alias := range existing {
			seen[normalizeAlias(alias, settings.CaseSensitive)] = true
		}

		merged := existing
		for _, name := range survivors {
			key := normalizeAlias(name, settings.CaseSensitive)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, name)
		}
		if len(merged) == len(existing) {
			return false
		}

		meta.SetStringList(AliasKey, merged)
		return true
	})
	if err != nil {
		m.logger.Warn("alias write failed", "path", file.Path, "error", err)
		return
	}
	m.logger.Debug("aliases settled", "path", file.Path, "candidates", survivors)
}

func normalizeAlias(name string, caseSensitive bool) string {
	if caseSensitive {
		return name
	}
	return strings.ToLower(name)
}
