package ui

import (
	"bytes"
	"io"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/pty"
)

// fakeTerm scripts PTY output through a channel and records writes.
type fakeTerm struct {
	out    chan []byte
	writes bytes.Buffer
	closed bool
}

func (t *fakeTerm) Read(p []byte) (int, error) {
	data, ok := <-t.out
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

func (t *fakeTerm) Write(p []byte) (int, error) { return t.writes.Write(p) }

func (t *fakeTerm) Resize(pty.Size) error { return nil }

func (t *fakeTerm) Close() error {
	if !t.closed {
		t.closed = true
		close(t.out)
	}
	return nil
}

func (t *fakeTerm) emit(data []byte) { t.out <- data }

type fakeRunner struct {
	last *fakeTerm
}

func (r *fakeRunner) Start(*exec.Cmd, pty.Size) (pty.Term, error) {
	r.last = &fakeTerm{out: make(chan []byte, 8)}
	return r.last, nil
}

func newLoadedShell(t *testing.T) (*ShellScreen, *fakeRunner) {
	t.Helper()
	r := &fakeRunner{}
	s := NewShellScreen(r, "")
	if err := s.Load(80, 24); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, r
}

func TestShellOutputFlow(t *testing.T) {
	s, r := newLoadedShell(t)

	listen := s.Init()
	if listen == nil {
		t.Fatal("Init should arm the listener")
	}
	r.last.emit([]byte("hello"))

	msg, ok := listen().(shellOutputMsg)
	if !ok {
		t.Fatalf("expected shellOutputMsg, got %T", msg)
	}
	if next := s.Update(msg); next == nil {
		t.Fatal("listener should re-arm after output")
	}
	if !strings.Contains(s.Render(), "hello") {
		t.Errorf("render %q should contain the output", s.Render())
	}
}

func TestShellInitArmsOnce(t *testing.T) {
	s, _ := newLoadedShell(t)

	if s.Init() == nil {
		t.Fatal("first Init should arm")
	}
	if s.Init() != nil {
		t.Error("second Init must not arm a second listener")
	}
}

func TestShellKeystrokesReachPTY(t *testing.T) {
	s, r := newLoadedShell(t)

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := r.last.writes.String(); got != "ls\r" {
		t.Errorf("pty received %q, want %q", got, "ls\r")
	}
}

func TestShellUnloadHangsUp(t *testing.T) {
	s, r := newLoadedShell(t)
	s.Init()

	before := s.gen
	s.Unload()
	if !r.last.closed {
		t.Error("unload should close the terminal")
	}

	// Output from the old spawn is stale and must be dropped.
	stale := shellOutputMsg{owner: s, gen: before, data: []byte("late")}
	s.Update(stale)
	if strings.Contains(s.content.String(), "late") {
		t.Error("stale output should be ignored")
	}
}

func TestShellChildExit(t *testing.T) {
	s, r := newLoadedShell(t)
	listen := s.Init()

	r.last.Close()
	msg, ok := listen().(shellExitedMsg)
	if !ok {
		t.Fatalf("expected shellExitedMsg, got %T", msg)
	}
	s.Update(msg)
	if !strings.Contains(s.content.String(), "shell exited") {
		t.Error("exit should be noted in the buffer")
	}
	if s.Init() == nil {
		t.Error("a disarmed listener may be re-armed")
	}
}
