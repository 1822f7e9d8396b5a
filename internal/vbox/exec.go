// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Runner executes a single control program invocation and returns its
// standard output.
type Runner interface {
	Run(ctx context.Context, executable string, args []string) (string, error)
}

// RunnerFunc adapts a plain function to the [Runner] interface.
type RunnerFunc func(
	ctx context.Context,
	executable string,
	args []string,
) (string, error)

// Run implements the [Runner] interface.
func (f RunnerFunc) Run(
	ctx context.Context,
	executable string,
	args []string,
) (string, error) {
	return f(ctx, executable, args)
}

// execRunner runs the control program as a child process, one invocation per
// operation.
type execRunner struct{}

// Run starts the control program and drains stdout and stderr concurrently.
// Both streams are echoed line by line to the debug log. Stdout is returned
// for parsing. A nonzero exit results in a [CommandError] carrying the
// captured error output.
func (execRunner) Run(
	ctx context.Context,
	executable string,
	args []string,
) (string, error) {
	cmd := exec.CommandContext(ctx, executable, args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("stdout pipe: %w", err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("stderr pipe: %w", err)
	}

	slog.Debug("Running VBoxManage",
		slog.String("executable", executable),
		slog.Any("args", args))

	err = cmd.Start()
	if err != nil {
		return "", fmt.Errorf("start %s: %w", executable, err)
	}

	var stdout, stderr strings.Builder

	drain := errgroup.Group{}
	drain.Go(func() error {
		return drainLines(stdoutPipe, &stdout, "stdout")
	})
	drain.Go(func() error {
		return drainLines(stderrPipe, &stderr, "stderr")
	})

	// Both pipes must be drained completely before Wait closes them.
	drainErr := drain.Wait()

	err = cmd.Wait()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.String(), fmt.Errorf("vboxmanage: %w", ctxErr)
		}

		cmdErr := &CommandError{
			Args:     args,
			ExitCode: -1,
			Output:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		return stdout.String(), cmdErr
	}

	if drainErr != nil {
		return stdout.String(), fmt.Errorf("read output: %w", drainErr)
	}

	return stdout.String(), nil
}

func drainLines(r io.Reader, sink *strings.Builder, stream string) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		sink.WriteString(line)
		sink.WriteByte('\n')

		slog.Debug("VBoxManage output",
			slog.String("stream", stream),
			slog.String("line", line))
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("scan %s: %w", stream, err)
	}

	return nil
}
