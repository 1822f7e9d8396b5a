// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vboxboot/vboxboot/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vboxboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, "machine_name: custom-box\nos_type: Windows10_64\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom-box", cfg.MachineName)
	assert.Equal(t, "Windows10_64", cfg.OSType)
	assert.Equal(t, config.Default().Description, cfg.Description)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VBOXBOOT_MACHINE_NAME", "env-box")
	t.Setenv("VBOXBOOT_OS_TYPE", "Debian_64")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-box", cfg.MachineName)
	assert.Equal(t, "Debian_64", cfg.OSType)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	path := writeConfigFile(t, "machine_name: file-box\n")

	t.Setenv("VBOXBOOT_MACHINE_NAME", "env-box")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-box", cfg.MachineName)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "machine_name: [unclosed\n")

	_, err := config.Load(path)
	require.Error(t, err)
}
