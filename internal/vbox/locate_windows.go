// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build windows

package vbox

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const executableName = "VBoxManage.exe"

// locate finds the VBoxManage executable. It probes the PATH first, then the
// installation directory recorded in the registry, then the default
// installation directory.
func locate() (string, error) {
	if path, err := exec.LookPath(executableName); err == nil {
		return path, nil
	}

	if dir, err := installDirFromRegistry(); err == nil {
		path := filepath.Join(dir, executableName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	path := filepath.Join(defaultInstallDir(), executableName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrNotFound
}

// installDirFromRegistry reads the installation directory the VirtualBox
// installer records.
func installDirFromRegistry() (string, error) {
	key, err := registry.OpenKey(
		registry.LOCAL_MACHINE,
		`SOFTWARE\Oracle\VirtualBox`,
		registry.QUERY_VALUE|registry.WOW64_64KEY,
	)
	if err != nil {
		return "", fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	dir, _, err := key.GetStringValue("InstallDir")
	if err != nil {
		return "", fmt.Errorf("read InstallDir: %w", err)
	}

	return dir, nil
}

func defaultInstallDir() string {
	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}

	return filepath.Join(programFiles, "Oracle", "VirtualBox")
}
