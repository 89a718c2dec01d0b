// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"code.hybscloud.com/komb/example/calc"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	astStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// replCmd runs the interactive session.
type replCmd struct{}

// Run executes the repl command.
func (replCmd) Run(root *CLI) error {
	_, err := tea.NewProgram(newReplModel(root)).Run()
	return err
}

const prompt = "calc> "

type replModel struct {
	root  *CLI
	input textinput.Model

	history []string
	// cursor indexes history while browsing; len(history) is the live
	// line.
	cursor  int
	showAST bool
}

func newReplModel(root *CLI) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "1 + 2*3"
	ti.Focus()
	return replModel{root: root, input: ti}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Println(hintStyle.Render("komb calculator; :help lists commands")),
		textinput.Blink,
	)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				m.input.SetValue(m.history[m.cursor])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.cursor < len(m.history) {
				m.cursor++
				if m.cursor == len(m.history) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.history[m.cursor])
					m.input.CursorEnd()
				}
			}
			return m, nil

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.history = append(m.history, line)
			m.cursor = len(m.history)
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	return m.input.View() + "\n"
}

// submit handles one entered line: a colon command or an expression.
func (m replModel) submit(line string) (tea.Model, tea.Cmd) {
	echo := tea.Println(promptStyle.Render(prompt) + line)

	switch line {
	case ":quit", ":q":
		return m, tea.Sequence(echo, tea.Quit)
	case ":help", ":h":
		return m, tea.Sequence(echo, tea.Println(helpView()))
	case ":ast":
		m.showAST = !m.showAST
		return m, tea.Sequence(echo,
			tea.Println(hintStyle.Render("ast display "+onOff(m.showAST))))
	case ":trace":
		m.root.Trace = !m.root.Trace
		return m, tea.Sequence(echo,
			tea.Println(hintStyle.Render("scope tracing "+onOff(m.root.Trace))))
	}
	return m, tea.Sequence(echo, m.eval(line))
}

// eval parses and evaluates one expression line.
func (m replModel) eval(line string) tea.Cmd {
	n, err := m.root.parse(line)
	if err != nil {
		return tea.Println(err.Error())
	}
	out := resultStyle.Render(formatResult(calc.Eval(n)))
	if m.showAST {
		out += "\n" + astStyle.Render(n.String())
	}
	return tea.Println(out)
}

func helpView() string {
	return hintStyle.Render(strings.Join([]string{
		":help   show this help",
		":ast    toggle tree display after results",
		":trace  toggle scope trails in errors",
		":quit   leave the session",
	}, "\n"))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
