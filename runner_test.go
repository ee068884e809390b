package pelican

import "context"

// fakeRunner is a commandRunner stub recording the invocation and returning
// canned output, so exec-backed engines are testable without binaries.
type fakeRunner struct {
	stdout string
	stderr string
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}
