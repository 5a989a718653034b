package launcher

import (
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"ragctl/internal/pyenv"
	"ragctl/internal/system"
)

// Command builds the hand-off command for mode without starting it.
func Command(mode Mode) *exec.Cmd {
	script := ChatScript
	if mode == ModeHotReload {
		script = HotReloadScript
	}
	return exec.Command(pyenv.Interpreter, script) //nolint:gosec
}

// dispatchFinishedMsg is emitted when the spawned chat app exits.
type dispatchFinishedMsg struct{ err error }

// dispatchModel runs the entry script via Bubble Tea's ExecProcess so the
// terminal state is properly restored when the process exits.
type dispatchModel struct {
	cmd *exec.Cmd
	err error
}

func (m dispatchModel) Init() tea.Cmd {
	// Start the chat app immediately on program start.
	return tea.ExecProcess(m.cmd, func(err error) tea.Msg {
		return dispatchFinishedMsg{err: err}
	})
}

func (m dispatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchFinishedMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m dispatchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("聊天应用退出: %v\n", m.err)
	}
	return ""
}

// Dispatch hands the console over to the selected entry script. This is
// the launcher's terminal action; the script owns the rest of the session
// and its exit status becomes the launcher's result.
func Dispatch(mode Mode) error {
	cmd := Command(mode)
	system.Logger.Debug("dispatching chat app", "mode", mode.String(), "args", cmd.Args)
	m, err := tea.NewProgram(dispatchModel{cmd: cmd}).Run()
	if err != nil {
		return err
	}
	// Run reports nil on a clean quit; the child's exit error lives on
	// the final model.
	if dm, ok := m.(dispatchModel); ok {
		return dm.err
	}
	return nil
}
