// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package sys_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vboxboot/vboxboot/internal/sys"
)

func TestCheckPlatform(t *testing.T) {
	err := sys.CheckPlatform()

	if runtime.GOOS == "windows" {
		require.NoError(t, err)
		return
	}

	require.ErrorIs(t, err, sys.ErrPlatformNotSupported)
	require.ErrorContains(t, err, runtime.GOOS)
}
