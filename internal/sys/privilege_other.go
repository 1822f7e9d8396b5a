// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build !windows

package sys

import "os"

// Elevated reports whether the current process runs as root.
func Elevated() bool {
	return os.Geteuid() == 0
}
