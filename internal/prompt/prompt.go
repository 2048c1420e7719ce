// Package prompt implements the interactive login form. All four
// fields are masked; the entered values never echo to the terminal.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/p13nctl/p13nctl/pkg/p13n"
)

const lastInput = 3

// Model collects the bearer token, csrf token and the two session
// cookies. Enter advances to the next field and submits on the last,
// Esc cancels.
type Model struct {
	bearerInput textinput.Model
	csrfInput   textinput.Model
	authInput   textinput.Model
	ct0Input    textinput.Model
	inputFocus  int
	submitted   bool
	cancelled   bool
	errMsg      string
}

func New() Model {
	bearerInput := textinput.New()
	bearerInput.Placeholder = "Bearer token"
	bearerInput.CharLimit = 256
	bearerInput.EchoMode = textinput.EchoPassword
	bearerInput.Focus()

	csrfInput := textinput.New()
	csrfInput.Placeholder = "x-csrf-token header value"
	csrfInput.CharLimit = 256
	csrfInput.EchoMode = textinput.EchoPassword

	authInput := textinput.New()
	authInput.Placeholder = "auth_token cookie"
	authInput.CharLimit = 256
	authInput.EchoMode = textinput.EchoPassword

	ct0Input := textinput.New()
	ct0Input.Placeholder = "blank to reuse the csrf token"
	ct0Input.CharLimit = 256
	ct0Input.EchoMode = textinput.EchoPassword

	return Model{
		bearerInput: bearerInput,
		csrfInput:   csrfInput,
		authInput:   authInput,
		ct0Input:    ct0Input,
		inputFocus:  0,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			m.nextInput()
			return m, nil
		case "shift+tab", "up":
			m.prevInput()
			return m, nil
		case "enter":
			if m.inputFocus < lastInput {
				m.nextInput()
				return m, nil
			}
			if field := m.firstMissingField(); field != "" {
				m.errMsg = fmt.Sprintf("%s is required", field)
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.inputFocus {
	case 0:
		m.bearerInput, cmd = m.bearerInput.Update(msg)
	case 1:
		m.csrfInput, cmd = m.csrfInput.Update(msg)
	case 2:
		m.authInput, cmd = m.authInput.Update(msg)
	case 3:
		m.ct0Input, cmd = m.ct0Input.Update(msg)
	}
	return m, cmd
}

// firstMissingField names the first required field still blank. The
// ct0 field may stay blank because it defaults to the csrf token.
func (m Model) firstMissingField() string {
	if strings.TrimSpace(m.bearerInput.Value()) == "" {
		return "bearer token"
	}
	if strings.TrimSpace(m.csrfInput.Value()) == "" {
		return "csrf token"
	}
	if strings.TrimSpace(m.authInput.Value()) == "" {
		return "auth_token cookie"
	}
	return ""
}

func (m *Model) nextInput() {
	m.blurAll()
	m.inputFocus = (m.inputFocus + 1) % (lastInput + 1)
	m.focusCurrent()
}

func (m *Model) prevInput() {
	m.blurAll()
	m.inputFocus = (m.inputFocus - 1 + lastInput + 1) % (lastInput + 1)
	m.focusCurrent()
}

func (m *Model) blurAll() {
	m.bearerInput.Blur()
	m.csrfInput.Blur()
	m.authInput.Blur()
	m.ct0Input.Blur()
}

func (m *Model) focusCurrent() {
	switch m.inputFocus {
	case 0:
		m.bearerInput.Focus()
	case 1:
		m.csrfInput.Focus()
	case 2:
		m.authInput.Focus()
	case 3:
		m.ct0Input.Focus()
	}
}

// Credentials returns the entered credential set. The second return
// value is false until the form was submitted.
func (m Model) Credentials() (p13n.Credentials, bool) {
	if !m.submitted {
		return p13n.Credentials{}, false
	}
	c := p13n.Credentials{
		BearerToken: strings.TrimSpace(m.bearerInput.Value()),
		CSRFToken:   strings.TrimSpace(m.csrfInput.Value()),
		AuthToken:   strings.TrimSpace(m.authInput.Value()),
		CT0:         strings.TrimSpace(m.ct0Input.Value()),
	}
	return c.WithDefaults(), true
}

func (m Model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8B5CF6")).
		Bold(true).
		Render("Store a session\n\n")

	b.WriteString(title)
	b.WriteString("Bearer token:\n")
	b.WriteString(m.bearerInput.View() + "\n\n")
	b.WriteString("CSRF token:\n")
	b.WriteString(m.csrfInput.View() + "\n\n")
	b.WriteString("auth_token cookie:\n")
	b.WriteString(m.authInput.View() + "\n\n")
	b.WriteString("ct0 cookie:\n")
	b.WriteString(m.ct0Input.View() + "\n\n")

	if m.errMsg != "" {
		errLine := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Render(m.errMsg + "\n")
		b.WriteString(errLine)
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF")).
		Italic(true).
		Render("Tab moves between fields. Enter submits, Esc cancels.")

	b.WriteString(help)

	return b.String()
}

// Run starts the form on the terminal. The second return value is
// false when the user cancelled instead of submitting.
func Run() (p13n.Credentials, bool, error) {
	p := tea.NewProgram(New())
	final, err := p.Run()
	if err != nil {
		return p13n.Credentials{}, false, err
	}
	m, ok := final.(Model)
	if !ok {
		return p13n.Credentials{}, false, fmt.Errorf("unexpected model type %T", final)
	}
	c, submitted := m.Credentials()
	return c, submitted, nil
}
