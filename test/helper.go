package test

import (
	"context"
	"strings"
	"sync"
)

// FakeToolRunner records every tool invocation and returns scripted results.
// The Ginkgo suite uses it to drive the whole pipeline without spawning
// processes.
type FakeToolRunner struct {
	mu    sync.Mutex
	calls []string

	// Fail maps a tool name to the error its invocation should return.
	Fail map[string]error
	// Output maps a tool name to the combined output it should return.
	Output map[string][]byte
}

func (f *FakeToolRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if err, scripted := f.Fail[name]; scripted && err != nil {
		return f.Output[name], err
	}
	return f.Output[name], nil
}

// Calls returns every recorded invocation as "<tool> <args...>" in order.
func (f *FakeToolRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Tools returns just the tool name of each recorded invocation, in order.
func (f *FakeToolRunner) Tools() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tools := make([]string, len(f.calls))
	for i, call := range f.calls {
		tools[i] = strings.SplitN(call, " ", 2)[0]
	}
	return tools
}
