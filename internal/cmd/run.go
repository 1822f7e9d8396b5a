// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vboxboot/vboxboot/internal/boot"
	"github.com/vboxboot/vboxboot/internal/config"
	"github.com/vboxboot/vboxboot/internal/diskmap"
	"github.com/vboxboot/vboxboot/internal/guard"
	"github.com/vboxboot/vboxboot/internal/sys"
	"github.com/vboxboot/vboxboot/internal/vbox"
)

const (
	// controllerName is the storage controller the linked disk attaches
	// to.
	controllerName = "SATA Controller"

	// linkFileName is the linked disk image created inside the
	// workspace.
	linkFileName = "linked_raw_disk.vmdk"

	// workspaceDirName is the app directory below the user config dir.
	workspaceDirName = "vboxboot"

	// managerProcessName is the VirtualBox manager GUI. Machines
	// themselves run under VirtualBoxVM.exe and may keep running.
	managerProcessName = "VirtualBox.exe"
)

func runBoot(ctx context.Context, opts *options) error {
	hv, err := newHypervisor(ctx)
	if err != nil {
		return err
	}

	device, err := runGuard(ctx, opts.cfg, hv)
	if err != nil {
		return err
	}

	spec, err := newBootSpec(opts.cfg, device)
	if err != nil {
		return err
	}

	err = boot.Run(ctx, spec, hv, hostProbe{})
	if err != nil {
		return err
	}

	return nil
}

// newHypervisor locates VBoxManage and verifies it answers.
func newHypervisor(ctx context.Context) (*vbox.Manage, error) {
	hv, err := vbox.New()
	if err != nil {
		return nil, err
	}

	version, err := hv.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("query VBoxManage version: %w", err)
	}

	slog.Debug("Found VBoxManage",
		slog.String("path", hv.Executable()),
		slog.String("version", version),
	)

	return hv, nil
}

func runGuard(
	ctx context.Context,
	cfg *config.Config,
	hv *vbox.Manage,
) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate own executable: %w", err)
	}

	g := &guard.Guard{
		MachineName:    cfg.MachineName,
		ManagerProcess: managerProcessName,
		ExecutablePath: exePath,
		SystemDrive:    systemDrive(),
		NewMapping:     newMapping,
		Hypervisor:     hv,
	}

	device, err := g.Run(ctx)
	if err != nil {
		return "", err
	}

	slog.Info("Safety checks passed", slog.String("device", device))

	return device, nil
}

func newMapping(ctx context.Context) (guard.Mapping, error) {
	mapping, err := diskmap.New(ctx, diskmap.HostEnumerator())
	if err != nil {
		return nil, err
	}

	return mapping, nil
}

func newBootSpec(cfg *config.Config, device string) (*boot.Spec, error) {
	workspace, err := workspaceDir()
	if err != nil {
		return nil, err
	}

	folder, err := machineFolder(cfg.MachineName)
	if err != nil {
		return nil, err
	}

	return &boot.Spec{
		MachineName:    cfg.MachineName,
		OSType:         cfg.OSType,
		Description:    cfg.Description,
		ControllerName: controllerName,
		Device:         device,
		WorkspaceDir:   workspace,
		LinkFileName:   linkFileName,
		MachineFolder:  folder,
	}, nil
}

// workspaceDir is the directory holding the linked disk image, below
// the user config dir (%AppData% on Windows).
func workspaceDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	return filepath.Join(base, workspaceDirName), nil
}

// machineFolder is the hypervisor's default profile directory for the
// machine.
func machineFolder(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, "VirtualBox VMs", name), nil
}

// systemDrive is the volume holding the running operating system.
func systemDrive() string {
	if drive := os.Getenv("SystemDrive"); drive != "" {
		return drive
	}

	return "C:"
}

// hostProbe feeds the live host facts into the resource policy.
type hostProbe struct{}

func (hostProbe) LogicalCores(ctx context.Context) (int, error) {
	return sys.LogicalCores(ctx)
}

func (hostProbe) AvailableMemoryMB(ctx context.Context) (uint64, error) {
	return sys.AvailableMemoryMB(ctx)
}
