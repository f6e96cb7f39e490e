package engine

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses /bin/sh")
	}
}

func shellEngine(script string) *Engine {
	return New(Invocation{Program: "sh", Args: []string{"-c", script}})
}

func TestRunStreamsLinesInOrder(t *testing.T) {
	skipWithoutShell(t)

	run, err := shellEngine(`printf 'one\ntwo\nthree\n'`).Start(context.Background())
	require.NoError(t, err)

	var got []string
	for line := range run.Lines {
		got = append(got, line)
	}
	assert.Equal(t, []string{"one", "two", "three"}, got)

	code, err := run.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunReportsExitCode(t *testing.T) {
	skipWithoutShell(t)

	run, err := shellEngine(`printf '! Emergency stop.\n'; exit 1`).Start(context.Background())
	require.NoError(t, err)

	for range run.Lines {
	}
	code, err := run.Wait()
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestStartFailsForMissingExecutable(t *testing.T) {
	eng := &Engine{inv: Invocation{Program: "texbuild-no-such-engine"}}
	_, err := eng.Start(context.Background())
	require.Error(t, err)
}

func TestCancelKillsChild(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	run, err := shellEngine(`sleep 30`).Start(ctx)
	require.NoError(t, err)
	cancel()

	done := make(chan struct{})
	go func() {
		for range run.Lines {
		}
		_, _ = run.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("child was not killed on context cancellation")
	}
}
