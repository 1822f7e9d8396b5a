// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

const mb = 1024 * 1024

// AvailableMemoryMB returns the amount of host memory in megabytes that is
// available for new allocations without swapping.
func AvailableMemoryMB(ctx context.Context) (uint64, error) {
	stat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read memory info: %w", err)
	}

	return stat.Available / mb, nil
}

// LogicalCores returns the number of logical CPUs of the host.
func LogicalCores(ctx context.Context) (int, error) {
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("count cpus: %w", err)
	}

	return count, nil
}

// ProcessRunning reports whether a process with the given executable name is
// running. Names are compared case-insensitively.
func ProcessRunning(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	for _, proc := range procs {
		procName, err := proc.NameWithContext(ctx)
		if err != nil {
			// Processes may terminate or deny access while scanning.
			continue
		}

		if strings.EqualFold(procName, name) {
			return true, nil
		}
	}

	return false, nil
}
