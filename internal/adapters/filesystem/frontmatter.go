package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"aliashist/internal/ports"
)

const frontmatterFence = "---"

// Editor implements ports.MetadataEditor over YAML front matter. Edits go
// through yaml.Node so unrelated keys, their order, and the note body survive
// a rewrite untouched; the file is replaced atomically via a temp-file rename.
type Editor struct {
	vault *Vault
}

// NewEditor creates a front-matter editor for the given vault.
func NewEditor(vault *Vault) *Editor {
	return &Editor{vault: vault}
}

// Update applies mutate to the file's front matter and persists the result
// when mutate commits. A file without front matter starts from an empty
// mapping; the block is only written if the mutator commits a change.
func (e *Editor) Update(path string, mutate func(meta ports.Metadata) bool) error {
	abs := filepath.Join(e.vault.Root(), filepath.FromSlash(path))
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	block, body, hasBlock := splitFrontmatter(string(data))
	mapping, err := parseMapping(block, hasBlock)
	if err != nil {
		return fmt.Errorf("front matter of %s: %w", path, err)
	}

	meta := &nodeMetadata{mapping: mapping}
	if !mutate(meta) || !meta.changed {
		return nil
	}

	rendered, err := renderFrontmatter(mapping)
	if err != nil {
		return fmt.Errorf("front matter of %s: %w", path, err)
	}
	return writeAtomic(abs, rendered+body)
}

// Read applies view to the file's front matter without writing.
func (e *Editor) Read(path string, view func(meta ports.Metadata)) error {
	abs := filepath.Join(e.vault.Root(), filepath.FromSlash(path))
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	block, _, hasBlock := splitFrontmatter(string(data))
	mapping, err := parseMapping(block, hasBlock)
	if err != nil {
		return fmt.Errorf("front matter of %s: %w", path, err)
	}
	view(&nodeMetadata{mapping: mapping})
	return nil
}

// splitFrontmatter separates a leading front-matter block from the body.
// block excludes the fences; body includes everything after the closing
// fence line (or the whole content when no block exists).
func splitFrontmatter(content string) (block, body string, ok bool) {
	rest, found := strings.CutPrefix(content, frontmatterFence+"\n")
	if !found {
		return "", content, false
	}
	for off := 0; off <= len(rest); {
		lineEnd := strings.IndexByte(rest[off:], '\n')
		line := rest[off:]
		next := len(rest)
		if lineEnd >= 0 {
			line = rest[off : off+lineEnd]
			next = off + lineEnd + 1
		}
		if strings.TrimRight(line, "\r") == frontmatterFence {
			return rest[:off], rest[next:], true
		}
		if lineEnd < 0 {
			break
		}
		off = next
	}
	return "", content, false
}

func parseMapping(block string, hasBlock bool) (*yaml.Node, error) {
	if !hasBlock || strings.TrimSpace(block) == "" {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		// Non-mapping front matter: nothing key-valued to edit.
		return nil, errors.New("not a key-value mapping")
	}
	return doc.Content[0], nil
}

func renderFrontmatter(mapping *yaml.Node) (string, error) {
	out, err := yaml.Marshal(mapping)
	if err != nil {
		return "", err
	}
	return frontmatterFence + "\n" + string(out) + frontmatterFence + "\n", nil
}

// writeAtomic replaces the file via a same-directory temp file and rename so
// a crash mid-write never leaves a truncated note behind.
func writeAtomic(abs, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(abs), ".aliashist-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, abs); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// nodeMetadata adapts a yaml mapping node to the ports.Metadata view.
type nodeMetadata struct {
	mapping *yaml.Node
	changed bool
}

func (m *nodeMetadata) valueNode(key string) *yaml.Node {
	content := m.mapping.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == key {
			return content[i+1]
		}
	}
	return nil
}

func (m *nodeMetadata) HasList(key string) bool {
	value := m.valueNode(key)
	return value != nil && value.Kind == yaml.SequenceNode
}

func (m *nodeMetadata) StringList(key string) ([]string, bool) {
	value := m.valueNode(key)
	if value == nil || value.Kind != yaml.SequenceNode {
		return nil, false
	}
	entries := make([]string, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind == yaml.ScalarNode {
			entries = append(entries, item.Value)
		}
	}
	return entries, true
}

func (m *nodeMetadata) SetStringList(key string, values []string) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range values {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: v,
		})
	}

	content := m.mapping.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == key {
			content[i+1] = seq
			m.changed = true
			return
		}
	}
	m.mapping.Content = append(m.mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		seq,
	)
	m.changed = true
}
