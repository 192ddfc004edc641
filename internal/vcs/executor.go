package vcs

import (
	"bytes"
	"os/exec"
)

// CommandExecutor runs an external command and returns its captured output.
// Production code uses ExecExecutor; tests substitute a fake so no git
// binary or repository is required.
type CommandExecutor interface {
	// ExecuteWithOutput runs the command, returning stdout on success and
	// stderr appended to the error on failure.
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default CommandExecutor backed by os/exec.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &commandError{err: err, stderr: stderr.String()}
	}
	return stdout.String(), nil
}

// commandError carries stderr alongside the exec error for diagnostics.
type commandError struct {
	err    error
	stderr string
}

func (e *commandError) Error() string {
	if e.stderr != "" {
		return e.err.Error() + ": " + e.stderr
	}
	return e.err.Error()
}

func (e *commandError) Unwrap() error { return e.err }
