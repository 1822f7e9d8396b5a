// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package sys_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vboxboot/vboxboot/internal/sys"
)

func TestAvailableMemoryMB(t *testing.T) {
	available, err := sys.AvailableMemoryMB(context.Background())
	require.NoError(t, err)

	assert.Positive(t, available)
}

func TestLogicalCores(t *testing.T) {
	cores, err := sys.LogicalCores(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cores, 1)
}

func TestProcessRunning(t *testing.T) {
	executable, err := os.Executable()
	require.NoError(t, err)

	tests := []struct {
		name     string
		process  string
		expected bool
	}{
		{
			name:     "own test binary",
			process:  filepath.Base(executable),
			expected: true,
		},
		{
			name:     "case insensitive",
			process:  strings.ToUpper(filepath.Base(executable)),
			expected: true,
		},
		{
			name:     "absent process",
			process:  "vboxboot-no-such-process.exe",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			running, err := sys.ProcessRunning(context.Background(), tt.process)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, running)
		})
	}
}
