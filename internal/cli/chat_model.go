package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dferenc/hireflow/internal/cli/formatter"
	"github.com/dferenc/hireflow/internal/contract"
)

// turnResultMsg carries the outcome of a conversation turn back into the
// bubbletea update loop.
type turnResultMsg struct {
	resp *contract.TurnResponse
	err  error
}

// chatModel is the bubbletea Model for the interactive chat loop.
type chatModel struct {
	input textinput.Model
	width int

	app       *App
	sessionID string

	// processing blocks further input while a turn is in flight.
	processing bool

	history    []string
	historyIdx int

	quitting bool
}

func newChatModel(app *App, sessionID string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return chatModel{
		input:     ti,
		app:       app,
		sessionID: sessionID,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(chatWelcome()),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len("you ❯ ") - 1
		return m, nil

	case turnResultMsg:
		return m.handleTurnResult(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.processing {
			return m, nil
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.processing {
		return formatter.Dim("thinking…") + "\n"
	}
	return m.promptPrefix() + m.input.View()
}

func (m *chatModel) promptPrefix() string {
	return formatter.StylePurple.Render("you") + " " + formatter.Dim("❯") + " "
}

func (m chatModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if input == "" {
			return m, nil
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "/quit", "/exit":
			m.quitting = true
			return m, tea.Quit
		}
		m.addHistory(input)
		m.processing = true
		echo := tea.Println(m.promptPrefix() + formatter.StyleFg.Render(input))
		return m, tea.Batch(echo, m.sendTurn(input))

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// sendTurn runs the conversation turn off the update loop.
func (m *chatModel) sendTurn(message string) tea.Cmd {
	app := m.app
	sessionID := m.sessionID
	return func() tea.Msg {
		resp, err := app.Conversation.ProcessTurn(
			context.Background(),
			contract.NewTurnRequest(sessionID, message),
		)
		return turnResultMsg{resp: resp, err: err}
	}
}

func (m chatModel) handleTurnResult(msg turnResultMsg) (tea.Model, tea.Cmd) {
	m.processing = false

	if msg.err != nil {
		var turnErr *contract.TurnError
		if errors.As(msg.err, &turnErr) {
			return m, tea.Println(formatter.FormatTurnError(turnErr))
		}
		return m, tea.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", msg.err)))
	}

	if msg.resp.SessionID != "" {
		m.sessionID = msg.resp.SessionID
	}

	output := formatter.FormatTurnResponse(msg.resp)

	if msg.resp.Phase.Terminal() {
		m.quitting = true
		footer := formatter.Dim(fmt.Sprintf(
			"Saved. View again with: hireflow session show %s", m.sessionID))
		return m, tea.Sequence(tea.Println(output+"\n"+footer), tea.Quit)
	}

	return m, tea.Println(output)
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *chatModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
}

func (m *chatModel) historyUp() {
	if m.historyIdx <= 0 {
		return
	}
	m.historyIdx--
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *chatModel) historyDown() {
	if m.historyIdx >= len(m.history) {
		return
	}
	m.historyIdx++
	if m.historyIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func chatWelcome() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Hireflow"))
	b.WriteString("\n")
	b.WriteString(formatter.StyleFg.Render("Tell me about the role you want to fill."))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Type 'exit' to leave."))
	return b.String()
}
