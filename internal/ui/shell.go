package ui

import (
	"bytes"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"navstack/internal/nav"
	"navstack/internal/pty"
)

// shellOutputMsg carries bytes read from the PTY for display. gen ties the
// message to one spawn of the shell, so output from a previous spawn is
// dropped after the view has been reloaded.
type shellOutputMsg struct {
	owner *ShellScreen
	gen   int
	data  []byte
}

// shellExitedMsg signals that the PTY hit EOF or an error.
type shellExitedMsg struct {
	owner *ShellScreen
	gen   int
}

// ShellScreen is a PTY-backed terminal screen. The shell is spawned when
// the view loads and hung up when it unloads; keystrokes pass through,
// output lands in a viewport. A screen unloaded by the capacity window
// loses its shell and spawns a fresh one when reloaded.
type ShellScreen struct {
	nav.BaseUnit
	runner  pty.Runner
	workDir string

	term     pty.Term
	gen      int
	armed    bool
	outputCh chan []byte
	content  *bytes.Buffer
	viewport viewport.Model
}

var _ Screen = (*ShellScreen)(nil)

// NewShellScreen creates a shell screen that will spawn a PTY in workDir
// ("." when empty) once its view loads.
func NewShellScreen(runner pty.Runner, workDir string) *ShellScreen {
	if workDir == "" {
		workDir = "."
	}
	return &ShellScreen{runner: runner, workDir: workDir, content: &bytes.Buffer{}}
}

// Title implements nav.Titled.
func (s *ShellScreen) Title() string { return "Shell" }

// Load implements nav.Unit. Spawns the shell at the view's size.
func (s *ShellScreen) Load(width, height int) error {
	if err := s.BaseUnit.Load(width, height); err != nil {
		return err
	}
	s.viewport = viewport.New(width, height)
	s.content.Reset()

	shell := "sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	cmd := exec.Command(shell)
	cmd.Dir = s.workDir

	term, err := s.runner.Start(cmd, ptySize(width, height))
	if err != nil {
		// The screen still loads; it just shows why there is no shell.
		s.content.WriteString("failed to spawn shell: " + err.Error() + "\r\n")
		s.refresh()
		return nil
	}
	s.term = term
	s.outputCh = make(chan []byte, 64)
	go pump(term, s.outputCh)
	return nil
}

// pump reads from the PTY and feeds the channel until the terminal is
// closed or the child exits. Output is dropped rather than blocking when
// the channel is full.
func pump(term pty.Term, out chan<- []byte) {
	buf := make([]byte, 256)
	for {
		n, err := term.Read(buf)
		if n > 0 {
			cp := make([]byte, n)
			copy(cp, buf[:n])
			select {
			case out <- cp:
			default:
			}
		}
		if err != nil {
			close(out)
			return
		}
	}
}

// Unload implements nav.Unit. Hangs up the shell.
func (s *ShellScreen) Unload() {
	s.BaseUnit.Unload()
	s.hangup()
}

// Close implements io.Closer, for when the screen is destroyed while its
// view is already gone.
func (s *ShellScreen) Close() error {
	s.hangup()
	return nil
}

func (s *ShellScreen) hangup() {
	if s.term != nil {
		s.term.Close()
		s.term = nil
	}
	s.outputCh = nil
	s.armed = false
	s.gen++
}

// Resize implements nav.Unit. The PTY follows the view size, so full-screen
// programs keep working after a terminal resize.
func (s *ShellScreen) Resize(width, height int) {
	s.BaseUnit.Resize(width, height)
	s.viewport.Width = width
	s.viewport.Height = height
	if s.term != nil {
		s.term.Resize(ptySize(width, height))
	}
	s.refresh()
}

// Init implements Screen. Arms the output listener; safe to call again
// when the screen is revealed, it never arms a second listener.
func (s *ShellScreen) Init() tea.Cmd {
	if s.term == nil || s.armed {
		return nil
	}
	s.armed = true
	return s.listen()
}

func (s *ShellScreen) listen() tea.Cmd {
	ch, gen := s.outputCh, s.gen
	return func() tea.Msg {
		data, ok := <-ch
		if !ok {
			return shellExitedMsg{owner: s, gen: gen}
		}
		return shellOutputMsg{owner: s, gen: gen, data: data}
	}
}

// Update implements Screen.
func (s *ShellScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case shellOutputMsg:
		if msg.gen != s.gen {
			return nil
		}
		s.content.Write(msg.data)
		s.refresh()
		s.viewport.GotoBottom()
		return s.listen()
	case shellExitedMsg:
		if msg.gen != s.gen {
			return nil
		}
		s.armed = false
		s.content.WriteString("\r\n[shell exited]\r\n")
		s.refresh()
		return nil
	case tea.KeyMsg:
		if s.term != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				s.term.Write(b)
			}
		}
		return nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// Render implements nav.Unit.
func (s *ShellScreen) Render() string {
	if !s.ViewLoaded() {
		return ""
	}
	return s.viewport.View()
}

func (s *ShellScreen) refresh() {
	s.viewport.SetContent(s.content.String())
}

func ptySize(width, height int) pty.Size {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return pty.Size{Rows: uint16(height), Cols: uint16(width)}
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
