package proc

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ExitError is returned by Run when the process starts but exits with a non-zero status
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Run executes name with args and waits for it to finish.
// Output written to stderr by the process is kept in the returned *ExitError.
func Run(name string, args ...string) error {
	var stderr bytes.Buffer
	c := exec.Command(name, args...)
	c.Stderr = &stderr
	err := c.Run()
	if err == nil {
		return nil
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return &ExitError{
			Cmd:    name,
			Code:   ee.ExitCode(),
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	return err
}

// LookPath reports whether name can be found as an executable
func LookPath(name string) (string, bool) {
	p, err := exec.LookPath(name)
	return p, err == nil
}
