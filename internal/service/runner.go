package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ToolRunner is the narrow host-process capability used for the encode and
// synthesis engines, so their callers can be tested with a fake tool.
type ToolRunner interface {
	Look(name string) (string, error)
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execToolRunner struct{}

func NewToolRunner() ToolRunner {
	return &execToolRunner{}
}

func (r *execToolRunner) Look(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the tool and returns its stdout. On failure the returned
// error carries the tool's stderr so callers can surface the tool's own
// diagnostic text.
func (r *execToolRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return stdout.Bytes(), fmt.Errorf("%s: %s", name, detail)
	}

	return stdout.Bytes(), nil
}
