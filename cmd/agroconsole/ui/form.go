package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormField declares one labeled input of a record form.
type FormField struct {
	Label       string
	Placeholder string
	CharLimit   int
}

// Form is a vertical stack of textinputs with focus cycling. It knows
// nothing about records; pages read Values and build their drafts.
type Form struct {
	labels []string
	inputs []textinput.Model
	focus  int
	styles Styles
}

// NewForm builds a form from the given field declarations.
func NewForm(styles Styles, fields ...FormField) Form {
	labels := make([]string, len(fields))
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		if field.CharLimit > 0 {
			ti.CharLimit = field.CharLimit
		}
		ti.Width = 32
		labels[i] = field.Label
		inputs[i] = ti
	}

	f := Form{labels: labels, inputs: inputs, styles: styles}
	f.setFocus(0)
	return f
}

// SetValues loads the inputs with the given values, one per field.
func (f *Form) SetValues(values []string) {
	for i := range f.inputs {
		if i < len(values) {
			f.inputs[i].SetValue(values[i])
		} else {
			f.inputs[i].SetValue("")
		}
	}
	f.setFocus(0)
}

// Values returns the raw text of every input in field order.
func (f Form) Values() []string {
	values := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		values[i] = input.Value()
	}
	return values
}

// Update routes key events: tab/down and shift+tab/up cycle focus, anything
// else goes to the focused input.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % len(f.inputs))
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the labeled inputs.
func (f Form) View() string {
	var b strings.Builder
	for i, input := range f.inputs {
		label := f.styles.Label.Render(f.labels[i])
		if i == f.focus {
			label = f.styles.Focused.Render(f.labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(input.View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (f *Form) setFocus(index int) {
	f.focus = index
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}
