// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build !windows

package vbox

import "os/exec"

const executableName = "VBoxManage"

// locate finds the VBoxManage executable in the PATH.
func locate() (string, error) {
	path, err := exec.LookPath(executableName)
	if err != nil {
		return "", ErrNotFound
	}

	return path, nil
}
