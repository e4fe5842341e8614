// Package pty spawns commands on a pseudo-terminal. The Runner interface
// hides github.com/creack/pty so screens can be tested against a fake.
package pty

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is the terminal geometry handed to the child process.
type Size struct {
	Rows uint16
	Cols uint16
}

// Term is a live pseudo-terminal attached to a running command. Closing it
// hangs up the terminal; the child sees EOF and exits on its own terms.
type Term interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Resize(size Size) error
	Close() error
}

// Runner spawns commands on a pseudo-terminal.
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (Term, error)
}

// System implements Runner with creack/pty.
type System struct{}

var _ Runner = System{}

// Start spawns cmd on a new pseudo-terminal of the given size.
func (System) Start(cmd *exec.Cmd, size Size) (Term, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	return &systemTerm{f: f}, nil
}

type systemTerm struct {
	f *os.File
}

func (t *systemTerm) Read(p []byte) (int, error)  { return t.f.Read(p) }
func (t *systemTerm) Write(p []byte) (int, error) { return t.f.Write(p) }
func (t *systemTerm) Close() error                { return t.f.Close() }

func (t *systemTerm) Resize(size Size) error {
	return pty.Setsize(t.f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
