package posync

import (
	"context"
	"os/exec"
)

//go:generate mockgen -source=$GOFILE -package mock_posync -destination=test/mock/$GOFILE

// ToolRunner invokes one external tool and blocks until it exits. It returns
// the combined stdout and stderr; a nonzero exit is reported through err with
// the output still populated.
type ToolRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execToolRunner struct{}

// NewExecToolRunner returns the default runner, which executes tools found on
// PATH via os/exec.
func NewExecToolRunner() ToolRunner {
	return execToolRunner{}
}

func (execToolRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
