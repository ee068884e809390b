package pelican

import (
	"bytes"
	"context"
	"os/exec"
)

// commandRunner abstracts subprocess execution so exec-backed engines can be
// tested without the real binaries.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// firstOnPath returns the first of the candidate binaries found on PATH, or
// "" when none is available.
func firstOnPath(candidates ...string) string {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
