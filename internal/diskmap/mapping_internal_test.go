// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package diskmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeOf(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
		found    bool
	}{
		{
			name:     "bare drive",
			path:     "C:",
			expected: "C:",
			found:    true,
		},
		{
			name:     "rooted path",
			path:     `C:\Windows`,
			expected: "C:",
			found:    true,
		},
		{
			name:     "lower case drive",
			path:     `z:\data`,
			expected: "z:",
			found:    true,
		},
		{
			name:  "relative path",
			path:  `tools\launcher.exe`,
			found: false,
		},
		{
			name:  "empty",
			path:  "",
			found: false,
		},
		{
			name:  "colon without drive letter",
			path:  `1:\data`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volume, found := volumeOf(tt.path)

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, volume)
		})
	}
}
