package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tableview/internal/ui"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.arrange()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)
		return m.settle()

	case NavigateMsg:
		m.s.engine.Execute(msg.URL)
		return m.settle()

	case DataFileMsg:
		m.s.fileRecords = msg.Result.Records
		if msg.Result.Skipped > 0 {
			m.s.status = fmt.Sprintf("Skipped %d malformed lines", msg.Result.Skipped)
		}
		if strings.HasPrefix(m.s.currentURL(), "dvhc/file") {
			m.s.reload()
		}
		return m, nil

	case ErrorMsg:
		m.s.err = msg.Err
		return m, nil

	case WatcherFailedMsg:
		m.s.err = fmt.Errorf("watcher: %w", msg.Err)
		return m, nil

	case UpdateAvailableMsg:
		m.s.notice = fmt.Sprintf("Update available: %s → %s", msg.Current, msg.Latest)
		return m, nil
	}

	return m, nil
}

// arrange lays the tree out above the status line
func (m Model) arrange() {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	m.s.root.Arrange(ui.Rect{W: m.width, H: h})
}

// settle quits once a route asked for it
func (m Model) settle() (tea.Model, tea.Cmd) {
	if m.s.quitting {
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input. The go-to prompt takes every key
// while open; otherwise application keys win over the table's keys.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.s
	if s.promptOpen {
		m.handlePromptKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		s.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		s.engine.Execute("app/back")
	case key.Matches(msg, m.keys.Yank):
		s.yank()
	case key.Matches(msg, m.keys.Jump):
		s.promptOpen = true
		s.prompt.SetValue("")
		s.prompt.Focus()
	case key.Matches(msg, m.keys.Reload):
		s.reload()
	default:
		s.ctx.Key(msg)
	}
	return m.settle()
}

// handlePromptKey edits the parent id and jumps on enter
func (m Model) handlePromptKey(msg tea.KeyMsg) {
	s := m.s
	switch msg.Type {
	case tea.KeyEsc:
		s.closePrompt()
	case tea.KeyEnter:
		id := s.prompt.Value()
		s.closePrompt()
		if id != "" {
			s.engine.Execute("dvhc/children?parent=" + id)
		}
	default:
		s.prompt.HandleKey(msg)
	}
}

func (s *screen) closePrompt() {
	s.promptOpen = false
	s.home.Table().Focus()
}
