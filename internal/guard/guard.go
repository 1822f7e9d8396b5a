// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package guard runs the pre-flight checks that protect the host before
// any machine state is touched.
package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/vboxboot/vboxboot/internal/sys"
)

// Mapping resolves filesystem paths to the raw device path of the
// physical disk backing them.
type Mapping interface {
	Lookup(path string) (string, error)
}

// Hypervisor answers which machines are currently executing.
type Hypervisor interface {
	RunningVMs(ctx context.Context) ([]string, error)
}

// Guard holds the facts and collaborators of the pre-flight checks.
//
// The function fields default to the real host probes from [sys] and
// exist so tests can substitute them.
type Guard struct {
	// MachineName is the machine this run is about to recreate.
	MachineName string

	// ManagerProcess is the executable name of the hypervisor GUI whose
	// presence blocks a raw disk boot.
	ManagerProcess string

	// ExecutablePath is the path of the running launcher binary.
	ExecutablePath string

	// SystemDrive is the volume holding the running operating system.
	SystemDrive string

	// NewMapping builds the disk mapping queried by the disk checks.
	NewMapping func(ctx context.Context) (Mapping, error)

	// Hypervisor lists running machines for the conflict check.
	Hypervisor Hypervisor

	// CheckPlatform rejects unsupported host platforms. Defaults to
	// [sys.CheckPlatform].
	CheckPlatform func() error

	// Elevated reports whether the process has administrative rights.
	// Defaults to [sys.Elevated].
	Elevated func() bool

	// ProcessRunning reports whether a process with the given image name
	// is running. Defaults to [sys.ProcessRunning].
	ProcessRunning func(ctx context.Context, name string) (bool, error)
}

// Run executes the checks in order and stops at the first violation:
// supported host platform, administrative privileges, launcher disk
// distinct from the system disk, target machine not running, hypervisor
// GUI closed. On success it returns the raw device path of the disk
// holding the launcher executable.
//
// The disk mapping is built between the privilege check and the disk
// checks, so enumeration failures surface only once the platform is
// known to be supported.
func (g *Guard) Run(ctx context.Context) (string, error) {
	checkPlatform := g.CheckPlatform
	if checkPlatform == nil {
		checkPlatform = sys.CheckPlatform
	}

	elevated := g.Elevated
	if elevated == nil {
		elevated = sys.Elevated
	}

	processRunning := g.ProcessRunning
	if processRunning == nil {
		processRunning = sys.ProcessRunning
	}

	if err := checkPlatform(); err != nil {
		return "", err
	}

	if !elevated() {
		return "", ErrNotElevated
	}

	mapping, err := g.NewMapping(ctx)
	if err != nil {
		return "", fmt.Errorf("map host disks: %w", err)
	}

	device, err := mapping.Lookup(g.ExecutablePath)
	if err != nil {
		return "", fmt.Errorf("locate launcher disk: %w", err)
	}

	systemDevice, err := mapping.Lookup(g.SystemDrive)
	if err != nil {
		return "", fmt.Errorf("locate system disk: %w", err)
	}

	if strings.EqualFold(device, systemDevice) {
		return "", fmt.Errorf("%w: %s", ErrSameDisk, device)
	}

	running, err := g.Hypervisor.RunningVMs(ctx)
	if err != nil {
		return "", fmt.Errorf("list running machines: %w", err)
	}

	for _, name := range running {
		if strings.EqualFold(name, g.MachineName) {
			return "", fmt.Errorf("%w: %s", ErrMachineRunning, g.MachineName)
		}
	}

	managerRunning, err := processRunning(ctx, g.ManagerProcess)
	if err != nil {
		return "", fmt.Errorf("scan processes: %w", err)
	}

	if managerRunning {
		return "", fmt.Errorf("%w: %s", ErrManagerRunning, g.ManagerProcess)
	}

	return device, nil
}
