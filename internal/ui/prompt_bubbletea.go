package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a one-field form: type a value, Enter to accept, Esc or
// Ctrl+C to abort.
type promptModel struct {
	label   string
	secret  bool
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel(label, placeholder string, secret bool) promptModel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	in.Focus()
	return promptModel{label: label, secret: secret, input: in}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	label := styleLabel.Render(m.label)
	switch {
	case m.aborted:
		return label + Muted("(aborted)") + "\n"
	case m.done && m.secret:
		return label + Muted("(hidden)") + "\n"
	case m.done:
		return label + m.input.Value() + "\n"
	}
	return label + m.input.View() + "\n"
}

// TeaPrompter runs a small bubbletea program for each question.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *TeaPrompter) Secret(label string) (string, error) {
	return p.run(newPromptModel(label, "", true))
}

func (p *TeaPrompter) Line(label, current string) (string, error) {
	return p.run(newPromptModel(label, current, false))
}

func (p *TeaPrompter) run(m promptModel) (string, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.In), tea.WithOutput(p.Out))
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	fm, ok := final.(promptModel)
	if !ok || fm.aborted {
		return "", ErrAborted
	}
	return fm.input.Value(), nil
}
