// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package boot implements the teardown, recreate and start pipeline for
// the raw disk machine.
package boot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vboxboot/vboxboot/internal/vbox"
)

const (
	// diskPort is the controller port the linked disk attaches to.
	diskPort = 0

	dirMode = 0o755
)

// Spec describes a single [Run].
type Spec struct {
	// MachineName is the virtual machine to recreate.
	MachineName string

	// OSType is the guest OS type the machine is registered with.
	OSType string

	// Description is stored on the machine unless empty.
	Description string

	// ControllerName is the storage controller the disk attaches to.
	ControllerName string

	// Device is the raw device path of the physical disk to boot.
	Device string

	// WorkspaceDir holds the linked disk image. It is wiped and
	// recreated on every run.
	WorkspaceDir string

	// LinkFileName is the name of the linked disk image file inside
	// WorkspaceDir.
	LinkFileName string

	// MachineFolder is the hypervisor's profile directory for
	// MachineName. Leftovers are removed during teardown.
	MachineFolder string
}

func (s *Spec) linkPath() string {
	return filepath.Join(s.WorkspaceDir, s.LinkFileName)
}

// Hypervisor is the set of machine operations the pipeline issues.
type Hypervisor interface {
	DeleteMachine(ctx context.Context, name string) error
	CreateRawDiskLink(ctx context.Context, path, device string) error
	CreateMachine(ctx context.Context, name, osType string) error
	SetDescription(ctx context.Context, name, description string) error
	AddStorageController(ctx context.Context, name, controller string) error
	EnableIOAPIC(ctx context.Context, name string) error
	AttachDisk(ctx context.Context, name, controller, medium string) error
	SetNonRotational(ctx context.Context, name string, port int) error
	SetResources(ctx context.Context, name string, resources vbox.Resources) error
	StartGUI(ctx context.Context, name string) error
}

// Host reports the machine facts the resource policy derives from.
type Host interface {
	LogicalCores(ctx context.Context) (int, error)
	AvailableMemoryMB(ctx context.Context) (uint64, error)
}

// Teardown deletes the machine and removes its leftover profile
// directory. Machine absence is not an error.
func Teardown(ctx context.Context, spec *Spec, hv Hypervisor) error {
	slog.Info("Removing existing machine", slog.String("name", spec.MachineName))

	err := hv.DeleteMachine(ctx, spec.MachineName)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}

	err = os.RemoveAll(spec.MachineFolder)
	if err != nil {
		return fmt.Errorf("remove machine folder: %w", err)
	}

	return nil
}

// recreateWorkspace resets the workspace directory so the new linked
// disk image never collides with a previous one.
func recreateWorkspace(dir string) error {
	err := os.RemoveAll(dir)
	if err != nil {
		return fmt.Errorf("remove workspace: %w", err)
	}

	err = os.MkdirAll(dir, dirMode)
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}

	return nil
}

// Run recreates the machine from scratch and boots it: teardown, fresh
// workspace, raw disk link, machine creation and configuration,
// resource sizing, GUI start. It stops at the first failing step. No
// step is retried or rolled back; rerunning starts over.
func Run(ctx context.Context, spec *Spec, hv Hypervisor, host Host) error {
	err := Teardown(ctx, spec, hv)
	if err != nil {
		return err
	}

	err = recreateWorkspace(spec.WorkspaceDir)
	if err != nil {
		return err
	}

	linkPath := spec.linkPath()

	slog.Info("Linking physical disk",
		slog.String("device", spec.Device),
		slog.String("path", linkPath),
	)

	err = hv.CreateRawDiskLink(ctx, linkPath, spec.Device)
	if err != nil {
		return fmt.Errorf("create raw disk link: %w", err)
	}

	slog.Info("Creating machine",
		slog.String("name", spec.MachineName),
		slog.String("ostype", spec.OSType),
	)

	err = hv.CreateMachine(ctx, spec.MachineName, spec.OSType)
	if err != nil {
		return fmt.Errorf("create machine: %w", err)
	}

	if spec.Description != "" {
		err = hv.SetDescription(ctx, spec.MachineName, spec.Description)
		if err != nil {
			return fmt.Errorf("set description: %w", err)
		}
	}

	err = hv.AddStorageController(ctx, spec.MachineName, spec.ControllerName)
	if err != nil {
		return fmt.Errorf("add storage controller: %w", err)
	}

	err = hv.EnableIOAPIC(ctx, spec.MachineName)
	if err != nil {
		return fmt.Errorf("enable io apic: %w", err)
	}

	slog.Info("Attaching disk", slog.String("controller", spec.ControllerName))

	err = hv.AttachDisk(ctx, spec.MachineName, spec.ControllerName, linkPath)
	if err != nil {
		return fmt.Errorf("attach disk: %w", err)
	}

	err = hv.SetNonRotational(ctx, spec.MachineName, diskPort)
	if err != nil {
		return fmt.Errorf("mark disk non-rotational: %w", err)
	}

	resources, err := hostResources(ctx, host)
	if err != nil {
		return err
	}

	slog.Info("Sizing machine",
		slog.Uint64("memoryMB", resources.MemoryMB),
		slog.Uint64("vramMB", resources.VRAMMB),
		slog.Uint64("cpus", resources.CPUs),
	)

	err = hv.SetResources(ctx, spec.MachineName, resources)
	if err != nil {
		return fmt.Errorf("set resources: %w", err)
	}

	slog.Info("Starting machine", slog.String("name", spec.MachineName))

	err = hv.StartGUI(ctx, spec.MachineName)
	if err != nil {
		return fmt.Errorf("start machine: %w", err)
	}

	return nil
}

// hostResources probes the host at the sizing step, not earlier, so a
// host below the memory gate fails exactly there.
func hostResources(ctx context.Context, host Host) (vbox.Resources, error) {
	cores, err := host.LogicalCores(ctx)
	if err != nil {
		return vbox.Resources{}, fmt.Errorf("probe logical cores: %w", err)
	}

	availableMB, err := host.AvailableMemoryMB(ctx)
	if err != nil {
		return vbox.Resources{}, fmt.Errorf("probe available memory: %w", err)
	}

	return ComputeResources(cores, availableMB)
}
