// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build windows

package diskmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32DiskDrive struct {
	DeviceID string
	Model    string
	Index    uint32
}

type win32DiskPartition struct {
	DeviceID string
}

type win32LogicalDisk struct {
	DeviceID string
}

// HostEnumerator returns the [Enumerator] for the local host. It walks the
// WMI association chain disk drive, disk partition, logical disk, so every
// mounted volume is related to the physical drive it lives on.
func HostEnumerator() Enumerator {
	return EnumerateFunc(enumerateWMI)
}

func enumerateWMI(ctx context.Context) ([]Entry, error) {
	var drives []win32DiskDrive

	err := wmi.Query(
		"SELECT DeviceID, Model, Index FROM Win32_DiskDrive", &drives,
	)
	if err != nil {
		return nil, fmt.Errorf("query disk drives: %w", err)
	}

	entries := make([]Entry, 0, len(drives))

	for _, drive := range drives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		volumes, err := volumesOfDrive(drive)
		if err != nil {
			return nil, err
		}

		for _, volume := range volumes {
			entries = append(entries, Entry{
				Volume: volume,
				Device: drive.DeviceID,
				Model:  drive.Model,
				Index:  int(drive.Index),
			})
		}
	}

	return entries, nil
}

func volumesOfDrive(drive win32DiskDrive) ([]string, error) {
	var partitions []win32DiskPartition

	query := fmt.Sprintf(
		"ASSOCIATORS OF {Win32_DiskDrive.DeviceID='%s'}"+
			" WHERE AssocClass = Win32_DiskDriveToDiskPartition",
		escapeObjectPath(drive.DeviceID),
	)

	err := wmi.Query(query, &partitions)
	if err != nil {
		return nil, fmt.Errorf("query partitions of %s: %w",
			drive.DeviceID, err)
	}

	var volumes []string

	for _, partition := range partitions {
		var disks []win32LogicalDisk

		query := fmt.Sprintf(
			"ASSOCIATORS OF {Win32_DiskPartition.DeviceID='%s'}"+
				" WHERE AssocClass = Win32_LogicalDiskToPartition",
			escapeObjectPath(partition.DeviceID),
		)

		err := wmi.Query(query, &disks)
		if err != nil {
			return nil, fmt.Errorf("query volumes of %s: %w",
				partition.DeviceID, err)
		}

		for _, disk := range disks {
			volumes = append(volumes, disk.DeviceID)
		}
	}

	return volumes, nil
}

// escapeObjectPath escapes a WMI object path literal. Device IDs like
// "\\.\PHYSICALDRIVE0" contain backslashes that WQL requires doubled.
func escapeObjectPath(id string) string {
	return strings.ReplaceAll(id, `\`, `\\`)
}
