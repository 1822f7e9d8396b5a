// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// CreateMachine registers a new machine with the given guest OS type.
func (m *Manage) CreateMachine(ctx context.Context, name, osType string) error {
	_, err := m.run(ctx, "createvm",
		"--name", name,
		"--ostype", osType,
		"--register")

	return err
}

// DeleteMachine unregisters the machine and deletes its files. A machine
// that cannot be deleted, usually because it does not exist, is not an
// error.
func (m *Manage) DeleteMachine(ctx context.Context, name string) error {
	_, err := m.run(ctx, "unregistervm", name, "--delete")
	if err != nil {
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			return err
		}

		slog.Debug("Machine deletion skipped",
			slog.String("machine", name),
			slog.Any("error", err))
	}

	return nil
}

// SetDescription stores a description text on the machine.
func (m *Manage) SetDescription(ctx context.Context, name, text string) error {
	_, err := m.run(ctx, "modifyvm", name, "--description", text)

	return err
}

// AddStorageController adds an AHCI SATA controller with the given name to
// the machine.
func (m *Manage) AddStorageController(
	ctx context.Context,
	name, controller string,
) error {
	_, err := m.run(ctx, "storagectl", name,
		"--name", controller,
		"--add", "sata",
		"--controller", "IntelAHCI")

	return err
}

// EnableIOAPIC enables the IO APIC of the machine. Booting from a SATA
// controller requires it.
func (m *Manage) EnableIOAPIC(ctx context.Context, name string) error {
	_, err := m.run(ctx, "modifyvm", name, "--ioapic", "on")

	return err
}

// AttachDisk attaches the disk medium to port 0 of the machine's storage
// controller.
func (m *Manage) AttachDisk(
	ctx context.Context,
	name, controller, medium string,
) error {
	_, err := m.run(ctx, "storageattach", name,
		"--storagectl", controller,
		"--port", "0",
		"--device", "0",
		"--type", "hdd",
		"--medium", medium)

	return err
}

// SetNonRotational marks the disk on the given controller port as solid
// state, so the guest does not schedule for a spinning disk.
func (m *Manage) SetNonRotational(
	ctx context.Context,
	name string,
	port int,
) error {
	key := fmt.Sprintf(
		"VBoxInternal/Devices/ahci/0/Config/Port%d/NonRotational", port)

	_, err := m.run(ctx, "setextradata", name, key, "1")

	return err
}

// SetResources sets the hardware allocation of the machine.
func (m *Manage) SetResources(
	ctx context.Context,
	name string,
	resources Resources,
) error {
	_, err := m.run(ctx, "modifyvm", name,
		"--memory", strconv.FormatUint(resources.MemoryMB, 10),
		"--vram", strconv.FormatUint(resources.VRAMMB, 10),
		"--cpus", strconv.FormatUint(resources.CPUs, 10))

	return err
}

// StartGUI boots the machine with the interactive GUI frontend.
func (m *Manage) StartGUI(ctx context.Context, name string) error {
	_, err := m.run(ctx, "startvm", name, "--type", "gui")

	return err
}

// RunningVMs returns the names of all machines currently executing.
func (m *Manage) RunningVMs(ctx context.Context) ([]string, error) {
	out, err := m.run(ctx, "list", "runningvms")
	if err != nil {
		return nil, err
	}

	return parseMachineList(out), nil
}

// Version returns the version of the control program.
func (m *Manage) Version(ctx context.Context) (string, error) {
	out, err := m.run(ctx, "--version")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// parseMachineList extracts machine names from a machine listing. Each line
// has the form `"name" {uuid}`. Lines in any other form are skipped.
func parseMachineList(out string) []string {
	names := make([]string, 0)

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, `"`) {
			continue
		}

		end := strings.LastIndex(line, `"`)
		if end < 1 {
			continue
		}

		names = append(names, line[1:end])
	}

	return names
}
