// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"fmt"
	"runtime"
)

const supportedOS = "windows"

// CheckPlatform verifies that the host operating system supports booting a
// raw physical disk in VirtualBox. Only Windows hosts provide the disk and
// volume enumeration this tool relies on.
func CheckPlatform() error {
	if runtime.GOOS != supportedOS {
		return fmt.Errorf("%w: %s", ErrPlatformNotSupported, runtime.GOOS)
	}

	return nil
}
