package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aliashist/internal/adapters/tui/styles"
	"aliashist/internal/config"
)

// Form field indices.
const (
	fieldDebounce = iota
	fieldIgnore
	fieldInclude
	fieldExclude
	fieldExtensions
	fieldFolderNote
	fieldCount
)

// SettingsKeyMap defines key bindings for the settings view.
type SettingsKeyMap struct {
	Save         key.Binding
	Quit         key.Binding
	CaseToggle   key.Binding
	AutoCreate   key.Binding
	FolderToggle key.Binding
	ChainPolicy  key.Binding
	CopyPath     key.Binding
}

// DefaultSettingsKeys returns the default settings key bindings.
var DefaultSettingsKeys = SettingsKeyMap{
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	CaseToggle: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "case sensitivity"),
	),
	AutoCreate: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "auto-create front matter"),
	),
	FolderToggle: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "folder renames"),
	),
	ChainPolicy: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "chain policy"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy settings path"),
	),
}

// SettingsModel edits the vault's rename-tracking settings.
type SettingsModel struct {
	vaultPath string
	settings  config.Settings
	form      *InputForm
	keys      SettingsKeyMap
	status    string
	statusErr bool
	width     int
	height    int
}

// NewSettingsModel creates the settings view for a vault, pre-filled from the
// persisted settings.
func NewSettingsModel(vaultPath string, settings config.Settings) *SettingsModel {
	fields := make([]InputField, fieldCount)
	fields[fieldDebounce] = NewInputField("Debounce seconds (1-20)", "3")
	fields[fieldIgnore] = NewInputField("Ignore patterns (regex, comma separated)", "^Untitled, \\d{4}-\\d{2}-\\d{2}")
	fields[fieldInclude] = NewInputField("Include folders (comma separated, * = vault root only)", "projects, areas")
	fields[fieldExclude] = NewInputField("Exclude folders (comma separated)", "templates, archive")
	fields[fieldExtensions] = NewInputField("Tracked extensions (comma separated)", "md")
	fields[fieldFolderNote] = NewInputField("Folder note name (blank = track all folder renames)", "index")

	m := &SettingsModel{
		vaultPath: vaultPath,
		settings:  settings,
		form:      NewInputForm(fields...),
		keys:      DefaultSettingsKeys,
	}
	m.fillForm()
	return m
}

func (m *SettingsModel) fillForm() {
	m.form.SetValue(fieldDebounce, strconv.Itoa(m.settings.DebounceSeconds))
	m.form.SetValue(fieldIgnore, strings.Join(m.settings.IgnorePatterns, ", "))
	m.form.SetValue(fieldInclude, strings.Join(m.settings.IncludeFolders, ", "))
	m.form.SetValue(fieldExclude, strings.Join(m.settings.ExcludeFolders, ", "))
	m.form.SetValue(fieldExtensions, strings.Join(m.settings.TrackedExtensions, ", "))
	m.form.SetValue(fieldFolderNote, m.settings.FolderNoteName)
}

// Init initializes the view.
func (m *SettingsModel) Init() tea.Cmd {
	return m.form.Init()
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the settings view.
func (m *SettingsModel) Update(msg tea.Msg) (*SettingsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Save):
			m.save()
			return m, nil

		case key.Matches(keyMsg, m.keys.CaseToggle):
			m.settings.CaseSensitive = !m.settings.CaseSensitive
			return m, nil

		case key.Matches(keyMsg, m.keys.AutoCreate):
			m.settings.AutoCreateFrontmatter = !m.settings.AutoCreateFrontmatter
			return m, nil

		case key.Matches(keyMsg, m.keys.FolderToggle):
			m.settings.TrackFolderRenames = !m.settings.TrackFolderRenames
			return m, nil

		case key.Matches(keyMsg, m.keys.ChainPolicy):
			if m.settings.ChainPolicy == config.ChainAll {
				m.settings.ChainPolicy = config.ChainFirst
			} else {
				m.settings.ChainPolicy = config.ChainAll
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.CopyPath):
			clipboard.WriteAll(config.Path(m.vaultPath))
			m.setStatus("Settings path copied to clipboard", false)
			return m, nil
		}
	}

	return m, m.form.Update(msg)
}

// save parses the form back into settings and persists them.
func (m *SettingsModel) save() {
	seconds, err := strconv.Atoi(m.form.Value(fieldDebounce))
	if err != nil {
		m.setStatus("Debounce seconds must be a number", true)
		return
	}

	m.settings.DebounceSeconds = seconds
	m.settings.IgnorePatterns = splitList(m.form.Value(fieldIgnore))
	m.settings.IncludeFolders = splitList(m.form.Value(fieldInclude))
	m.settings.ExcludeFolders = splitList(m.form.Value(fieldExclude))
	m.settings.TrackedExtensions = splitList(m.form.Value(fieldExtensions))
	m.settings.FolderNoteName = m.form.Value(fieldFolderNote)
	m.settings = m.settings.Clamp()
	m.fillForm()

	if err := config.Save(m.vaultPath, m.settings); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), true)
		return
	}
	m.setStatus("Settings saved", false)
}

func (m *SettingsModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View renders the settings form.
func (m *SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rename tracking settings"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(config.Path(m.vaultPath)))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	b.WriteString(renderToggle("case sensitive", m.settings.CaseSensitive))
	b.WriteString("  ")
	b.WriteString(renderToggle("auto-create front matter", m.settings.AutoCreateFrontmatter))
	b.WriteString("  ")
	b.WriteString(renderToggle("track folder renames", m.settings.TrackFolderRenames))
	b.WriteString("  ")
	b.WriteString(styles.InputLabel.Render("chain policy: ") + m.settings.ChainPolicy)
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(styles.StatusError.Render(m.status))
		} else {
			b.WriteString(styles.StatusOK.Render(m.status))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderHelp())
	return styles.App.Render(b.String())
}

func renderToggle(label string, on bool) string {
	if on {
		return styles.ToggleOn.Render("[x] " + label)
	}
	return styles.ToggleOff.Render("[ ] " + label)
}

func (m *SettingsModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Save, m.keys.CaseToggle, m.keys.AutoCreate,
		m.keys.FolderToggle, m.keys.ChainPolicy, m.keys.CopyPath, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, styles.HelpKey.Render(b.Help().Key)+" "+styles.HelpDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
