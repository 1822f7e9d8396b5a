// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import "context"

// Manage is a client for a located VBoxManage executable.
type Manage struct {
	executable string
	runner     Runner
}

// New locates the VBoxManage executable and returns a client for it. It
// returns [ErrNotFound] if no installation can be found.
func New() (*Manage, error) {
	executable, err := locate()
	if err != nil {
		return nil, err
	}

	return &Manage{
		executable: executable,
		runner:     execRunner{},
	}, nil
}

// NewWithRunner returns a client that dispatches invocations to the given
// [Runner] instead of executing a located control program. It is intended
// for tests.
func NewWithRunner(executable string, runner Runner) *Manage {
	return &Manage{
		executable: executable,
		runner:     runner,
	}
}

// Executable returns the path of the control program the client invokes.
func (m *Manage) Executable() string {
	return m.executable
}

func (m *Manage) run(ctx context.Context, args ...string) (string, error) {
	return m.runner.Run(ctx, m.executable, args)
}
