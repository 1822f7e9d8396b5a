// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package config loads the machine profile from file, environment and
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "vboxboot"
	envPrefix  = "VBOXBOOT"
)

// Config holds the operator adjustable machine profile.
type Config struct {
	// MachineName is the name the virtual machine is registered under.
	MachineName string `mapstructure:"machine_name"`

	// OSType is the guest OS type the machine is created with.
	OSType string `mapstructure:"os_type"`

	// Description is stored on the machine. Empty leaves the machine
	// without one.
	Description string `mapstructure:"description"`
}

// Default returns the built-in machine profile.
func Default() *Config {
	return &Config{
		MachineName: "portable-linux-DO-NOT-BOOT-FROM-GUI",
		OSType:      "ArchLinux_64",
		Description: "Boots a physical disk attached raw. " +
			"Start it with vboxboot, not from the VirtualBox GUI.",
	}
}

// Load reads the profile from the given file, or, if file is empty,
// from a vboxboot.yaml found next to the executable or in the working
// directory. Environment variables prefixed VBOXBOOT_ override file
// values. A missing file is only an error when it was named explicitly.
func Load(file string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("machine_name", defaults.MachineName)
	v.SetDefault("os_type", defaults.OSType)
	v.SetDefault("description", defaults.Description)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")

		if dir, err := executableDir(); err == nil {
			v.AddConfigPath(dir)
		}

		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// executableDir resolves the directory of the running binary. The tool
// travels on the disk it boots, so its config file does too.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	return filepath.Dir(exe), nil
}
