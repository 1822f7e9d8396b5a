// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package diskmap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"
)

// Entry relates one mounted volume to the physical disk backing it.
type Entry struct {
	// Volume is the logical volume identifier, e.g. "C:".
	Volume string

	// Device is the raw device path of the backing disk, e.g.
	// "\\.\PHYSICALDRIVE0". It is the path the hypervisor links against.
	Device string

	// Model is the self-reported hardware model of the disk.
	Model string

	// Index is the numeric index of the disk on the host.
	Index int
}

// Enumerator lists the volume to disk relations of the host.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]Entry, error)
}

// EnumerateFunc adapts a plain function to the [Enumerator] interface.
type EnumerateFunc func(ctx context.Context) ([]Entry, error)

// Enumerate implements the [Enumerator] interface.
func (f EnumerateFunc) Enumerate(ctx context.Context) ([]Entry, error) {
	return f(ctx)
}

// Mapping is an immutable snapshot of the host's volume to disk relations.
type Mapping struct {
	entries []Entry
}

// New builds a [Mapping] with a single enumeration pass.
func New(ctx context.Context, enumerator Enumerator) (*Mapping, error) {
	entries, err := enumerator.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate disks: %w", err)
	}

	entries = slices.Clone(entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Volume, b.Volume)
	})

	return &Mapping{entries: entries}, nil
}

// Entries returns all entries ordered by volume.
func (m *Mapping) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Lookup returns the raw device path of the physical disk backing the volume
// that contains path. Relative paths are resolved against the working
// directory first. The volume is matched case-insensitively. It returns
// [ErrDeviceNotFound] if the path has no volume component or no disk is
// mapped for its volume.
func (m *Mapping) Lookup(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrDeviceNotFound)
	}

	volume, ok := volumeOf(path)
	if !ok {
		if abs, err := filepath.Abs(path); err == nil {
			volume, ok = volumeOf(abs)
		}
	}

	if !ok {
		return "", fmt.Errorf("%w: path %q has no volume", ErrDeviceNotFound,
			path)
	}

	for _, entry := range m.entries {
		if entry.Device == "" {
			continue
		}

		if strings.EqualFold(entry.Volume, volume) {
			return entry.Device, nil
		}
	}

	return "", fmt.Errorf("%w: volume %s", ErrDeviceNotFound, volume)
}

// WriteTable renders the mapping as an aligned diagnostic table.
func (m *Mapping) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "VOLUME\tDISK\tDEVICE\tMODEL")

	for _, entry := range m.entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			entry.Volume, entry.Index, entry.Device, entry.Model)
	}

	err := tw.Flush()
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// volumeOf extracts the volume identifier of a path. It prefers the
// platform's own notion of a volume name and falls back to a plain drive
// letter scan, so Windows style paths resolve on any platform.
func volumeOf(path string) (string, bool) {
	if volume := filepath.VolumeName(path); volume != "" {
		return volume, true
	}

	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return path[:2], true
	}

	return "", false
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
