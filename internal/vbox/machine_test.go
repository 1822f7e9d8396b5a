// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vboxboot/vboxboot/internal/vbox"
)

func TestManageArgumentVectors(t *testing.T) {
	tests := []struct {
		name     string
		op       func(ctx context.Context, client *vbox.Manage) error
		expected []string
	}{
		{
			name: "create raw disk link",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.CreateRawDiskLink(ctx,
					`C:\ws\linked_raw_disk.vmdk`, `\\.\PHYSICALDRIVE1`)
			},
			expected: []string{
				"internalcommands", "createrawvmdk",
				"-filename", `C:\ws\linked_raw_disk.vmdk`,
				"-rawdisk", `\\.\PHYSICALDRIVE1`,
			},
		},
		{
			name: "create machine",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.CreateMachine(ctx, "box", "ArchLinux_64")
			},
			expected: []string{
				"createvm",
				"--name", "box",
				"--ostype", "ArchLinux_64",
				"--register",
			},
		},
		{
			name: "delete machine",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.DeleteMachine(ctx, "box")
			},
			expected: []string{"unregistervm", "box", "--delete"},
		},
		{
			name: "set description",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.SetDescription(ctx, "box", "throwaway")
			},
			expected: []string{
				"modifyvm", "box", "--description", "throwaway",
			},
		},
		{
			name: "add storage controller",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.AddStorageController(ctx, "box",
					"SATA Controller")
			},
			expected: []string{
				"storagectl", "box",
				"--name", "SATA Controller",
				"--add", "sata",
				"--controller", "IntelAHCI",
			},
		},
		{
			name: "enable io apic",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.EnableIOAPIC(ctx, "box")
			},
			expected: []string{"modifyvm", "box", "--ioapic", "on"},
		},
		{
			name: "attach disk",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.AttachDisk(ctx, "box", "SATA Controller",
					`C:\ws\linked_raw_disk.vmdk`)
			},
			expected: []string{
				"storageattach", "box",
				"--storagectl", "SATA Controller",
				"--port", "0",
				"--device", "0",
				"--type", "hdd",
				"--medium", `C:\ws\linked_raw_disk.vmdk`,
			},
		},
		{
			name: "set non rotational",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.SetNonRotational(ctx, "box", 0)
			},
			expected: []string{
				"setextradata", "box",
				"VBoxInternal/Devices/ahci/0/Config/Port0/NonRotational",
				"1",
			},
		},
		{
			name: "set resources",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.SetResources(ctx, "box", vbox.Resources{
					MemoryMB: 2048,
					VRAMMB:   256,
					CPUs:     4,
				})
			},
			expected: []string{
				"modifyvm", "box",
				"--memory", "2048",
				"--vram", "256",
				"--cpus", "4",
			},
		},
		{
			name: "start gui",
			op: func(ctx context.Context, client *vbox.Manage) error {
				return client.StartGUI(ctx, "box")
			},
			expected: []string{"startvm", "box", "--type", "gui"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &vbox.CommandRecorder{}
			client := vbox.NewWithRunner("VBoxManage", recorder)

			err := tt.op(context.Background(), client)
			require.NoError(t, err)

			assert.Equal(t, [][]string{tt.expected}, recorder.Calls)
		})
	}
}

func TestManageRunningVMs(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "empty",
			output:   "",
			expected: []string{},
		},
		{
			name:     "single machine",
			output:   "\"box\" {8a2b91f2-bafa-4b6c-9b1d-2f3a5c70c7a1}\n",
			expected: []string{"box"},
		},
		{
			name: "multiple machines",
			output: "\"box\" {8a2b91f2-bafa-4b6c-9b1d-2f3a5c70c7a1}\n" +
				"\"other\" {11f2a04e-70c2-4a4a-b154-9c7f21c2a101}\n",
			expected: []string{"box", "other"},
		},
		{
			name:     "name with spaces",
			output:   "\"my machine\" {11f2a04e-70c2-4a4a-b154-9c7f21c2a101}\n",
			expected: []string{"my machine"},
		},
		{
			name: "unrelated lines skipped",
			output: "WARNING: something\n" +
				"\"box\" {8a2b91f2-bafa-4b6c-9b1d-2f3a5c70c7a1}\n",
			expected: []string{"box"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &vbox.CommandRecorder{
				Stdout: map[string]string{"list": tt.output},
			}
			client := vbox.NewWithRunner("VBoxManage", recorder)

			names, err := client.RunningVMs(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.expected, names)
			assert.Equal(t, [][]string{{"list", "runningvms"}},
				recorder.Calls)
		})
	}
}

func TestManageVersion(t *testing.T) {
	recorder := &vbox.CommandRecorder{
		Stdout: map[string]string{"--version": "7.0.18r162988\n"},
	}
	client := vbox.NewWithRunner("VBoxManage", recorder)

	version, err := client.Version(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "7.0.18r162988", version)
}

func TestManageDeleteMachineBestEffort(t *testing.T) {
	t.Run("command failure is swallowed", func(t *testing.T) {
		recorder := &vbox.CommandRecorder{
			Errs: map[string]error{
				"unregistervm": &vbox.CommandError{
					Args:     []string{"unregistervm", "box", "--delete"},
					ExitCode: 1,
					Output:   "Could not find a registered machine",
				},
			},
		}
		client := vbox.NewWithRunner("VBoxManage", recorder)

		err := client.DeleteMachine(context.Background(), "box")
		require.NoError(t, err)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		errRun := errors.New("runner broken")
		recorder := &vbox.CommandRecorder{
			Errs: map[string]error{"unregistervm": errRun},
		}
		client := vbox.NewWithRunner("VBoxManage", recorder)

		err := client.DeleteMachine(context.Background(), "box")
		require.ErrorIs(t, err, errRun)
	})
}

func TestManageOperationFailure(t *testing.T) {
	recorder := &vbox.CommandRecorder{
		Errs: map[string]error{
			"startvm": &vbox.CommandError{
				Args:     []string{"startvm", "box", "--type", "gui"},
				ExitCode: 1,
				Output:   "VBoxManage.exe: error: The machine is locked",
			},
		},
	}
	client := vbox.NewWithRunner("VBoxManage", recorder)

	err := client.StartGUI(context.Background(), "box")

	var cmdErr *vbox.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
}
