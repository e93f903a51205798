package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"aliashist/internal/adapters/tui/styles"
)

// InputField is a labelled text input within a form.
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates an input field with the given label and placeholder.
func NewInputField(label, placeholder string) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	return InputField{Label: label, Input: input}
}

// InputForm manages a stack of text inputs with tab-cycled focus.
type InputForm struct {
	Fields       []InputField
	FocusedField int
	nextKey      key.Binding
}

// NewInputForm creates a form over the given fields, focusing the first.
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		nextKey: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// Init returns the cursor blink command for the focused input.
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes a message to the form. Tab advances focus; everything else
// goes to the focused input.
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, f.nextKey) {
		f.NextField()
		return nil
	}

	var cmd tea.Cmd
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field, wrapping around.
func (f *InputForm) NextField() {
	if len(f.Fields) <= 1 {
		return
	}
	f.Fields[f.FocusedField].Input.Blur()
	f.FocusedField = (f.FocusedField + 1) % len(f.Fields)
	f.Fields[f.FocusedField].Input.Focus()
}

// Value returns the trimmed value of a field.
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets a field's value.
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// RenderField renders one field with focus-aware styling.
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	field := f.Fields[index]

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")
	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(field.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(field.Input.View()))
	}
	return b.String()
}
