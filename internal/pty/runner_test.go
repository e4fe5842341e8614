package pty

import (
	"os/exec"
	"strings"
	"testing"
)

func TestSystemStartRunsCommand(t *testing.T) {
	term, err := System{}.Start(exec.Command("sh", "-c", "printf hello"), Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer term.Close()

	var out strings.Builder
	buf := make([]byte, 256)
	for {
		n, err := term.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			// The pty reports an error once the child exits.
			break
		}
	}
	if !strings.Contains(out.String(), "hello") {
		t.Errorf("output %q does not contain %q", out.String(), "hello")
	}
}

func TestSystemResize(t *testing.T) {
	term, err := System{}.Start(exec.Command("sleep", "0.1"), Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer term.Close()

	if err := term.Resize(Size{Rows: 40, Cols: 120}); err != nil {
		t.Errorf("Resize: %v", err)
	}
}
