package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldValue
	fieldDescription
	fieldCount
)

// addForm collects a custom constant.
type addForm struct {
	inputs  []textinput.Model
	focused int
	err     string
}

func newAddForm() addForm {
	labels := []string{"Name", "Value", "Description"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = labels[i] + ": "
		in.CharLimit = formCharLimit
		in.Width = formInputWidth
		inputs[i] = in
	}
	inputs[fieldName].Placeholder = "Hubble Constant"
	inputs[fieldValue].Placeholder = "70 km/s/Mpc"
	inputs[fieldDescription].Placeholder = "Rate of cosmic expansion"
	return addForm{inputs: inputs}
}

// open resets the form and focuses the first field.
func (f *addForm) open() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.err = ""
	f.focused = fieldName
	return f.inputs[fieldName].Focus()
}

// move shifts focus by delta, wrapping around.
func (f *addForm) move(delta int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f addForm) values() (name, value, description string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldValue].Value(), f.inputs[fieldDescription].Value()
}

func (f addForm) view() string {
	var b strings.Builder
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}
