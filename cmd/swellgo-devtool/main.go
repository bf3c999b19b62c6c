// Command swellgo-devtool is a Bubble Tea TUI dialing the reactor's debug
// socket: a live view of turn timing and the current space's tree,
// refreshed on a short tick so an operator can watch a reactor react to
// real window activity.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/swellgo/internal/cli/styles"
	"github.com/bnema/swellgo/internal/config"
	"github.com/bnema/swellgo/internal/debugproto"
)

const pollInterval = 500 * time.Millisecond

func main() {
	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	theme *styles.Theme

	timing *debugproto.TimingPayload
	tree   string
	err    error
}

func newModel() model {
	return model{theme: styles.NewTheme()}
}

type tickMsg time.Time

type pollResultMsg struct {
	timing *debugproto.TimingPayload
	tree   string
	err    error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(poll(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func poll() tea.Cmd {
	return func() tea.Msg {
		timing, timingErr := dial(debugproto.Request{Type: debugproto.RequestShowTiming})
		tree, treeErr := dial(debugproto.Request{Type: debugproto.RequestDumpTree})

		err := timingErr
		if err == nil {
			err = treeErr
		}

		msg := pollResultMsg{err: err}
		if timing != nil {
			msg.timing = timing.Timing
		}
		if tree != nil {
			msg.tree = tree.Tree
		}
		return msg
	}
}

func dial(req debugproto.Request) (*debugproto.Response, error) {
	sockPath, err := config.GetDebugSocketPath()
	if err != nil {
		return nil, fmt.Errorf("resolve debug socket path: %w", err)
	}
	conn, err := net.DialTimeout("unix", sockPath, time.Second)
	if err != nil {
		return nil, fmt.Errorf("no reactor listening at %s: %w", sockPath, err)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(time.Second))
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return nil, fmt.Errorf("reactor closed the connection without responding")
	}
	var resp debugproto.Response
	if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("reactor reported an error: %s", resp.Error)
	}
	return &resp, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		return m, tea.Batch(poll(), tick())
	case pollResultMsg:
		m.err = msg.err
		if msg.err == nil {
			m.timing = msg.timing
			m.tree = msg.tree
		}
	}
	return m, nil
}

func (m model) View() string {
	t := m.theme

	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" + t.Subtle.Render("q to quit"))
	}

	var timingView string
	if m.timing == nil || m.timing.Count == 0 {
		timingView = t.Subtle.Render("no timing samples recorded yet")
	} else {
		timingView = lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("samples=%d", m.timing.Count),
			fmt.Sprintf("dispatch: mean=%s max=%s", m.timing.MeanDispatch, m.timing.MaxDispatch),
			fmt.Sprintf("handle:   mean=%s max=%s", m.timing.MeanHandle, m.timing.MaxHandle),
			fmt.Sprintf("animation frames: %d", m.timing.TotalAnimFrames),
		)
	}

	treeView := m.tree
	if treeView == "" {
		treeView = t.Subtle.Render("(empty space)")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("swellgo devtool"),
		"",
		t.BoxHeader.Render("timing"),
		timingView,
		"",
		t.BoxHeader.Render("tree"),
		treeView,
		"",
		t.Subtle.Render("q to quit"),
	)
	return t.Box.Render(content)
}

var _ tea.Model = model{}
