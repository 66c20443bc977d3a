package main

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const mpvProbeTimeout = 10 * time.Second

// Pre-compiled patterns for parsing mpv capability-listing output
var (
	reDRMConnector = regexp.MustCompile(`(?i)^Available modes for drm-connector=(\d+)\.(\S+)`)
	reDRMMode      = regexp.MustCompile(`^\s*Mode\s+(\d+):\s*(\d+)x(\d+)\s*\((\d+)x(\d+)@([\d.]+)Hz\)`)
	reAudioDevice  = regexp.MustCompile(`^\s*'([^']+)'\s*\(([^)]+)\)`)
)

// DisplayMode is one mode of a DRM connector
type DisplayMode struct {
	ID      string
	Width   string
	Height  string
	Refresh string
	Display string
}

// Connector is a DRM connector with its available modes, in the order mpv
// reports them.
type Connector struct {
	Name  string
	Modes []DisplayMode
}

// AudioDevice is one audio output device
type AudioDevice struct {
	ID          string
	Description string
}

// probeMPV runs mpv in a capability-listing mode and returns the combined
// stdout+stderr text. A missing binary and a timeout both count as
// inspection errors, distinguishable from an empty listing.
func probeMPV(flag string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mpvProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "mpv", flag).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("mpv %s timed out after %s", flag, mpvProbeTimeout)
	}
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("mpv not found: %w", err)
		}
		// mpv exits non-zero after printing help listings; the output is
		// still usable
	}
	return string(out), nil
}

// parseDRMModes extracts connectors and their modes from the output of
// mpv --drm-mode=help. Connector order follows the listing.
func parseDRMModes(output string) []Connector {
	var connectors []Connector

	for _, line := range strings.Split(output, "\n") {
		if m := reDRMConnector.FindStringSubmatch(line); m != nil {
			connectors = append(connectors, Connector{Name: m[2]})
			continue
		}
		if len(connectors) == 0 {
			continue
		}
		if m := reDRMMode.FindStringSubmatch(line); m != nil {
			last := &connectors[len(connectors)-1]
			last.Modes = append(last.Modes, DisplayMode{
				ID:      m[1],
				Width:   m[2],
				Height:  m[3],
				Refresh: m[6],
				Display: fmt.Sprintf("%sx%s @ %sHz", m[2], m[3], m[6]),
			})
		}
	}

	return connectors
}

// parseAudioDevices extracts devices from the output of
// mpv --audio-device=help.
func parseAudioDevices(output string) []AudioDevice {
	var devices []AudioDevice

	for _, line := range strings.Split(output, "\n") {
		if m := reAudioDevice.FindStringSubmatch(line); m != nil {
			devices = append(devices, AudioDevice{ID: m[1], Description: m[2]})
		}
	}

	return devices
}

func probeDRMModes() ([]Connector, error) {
	out, err := probeMPV("--drm-mode=help")
	if err != nil {
		return nil, err
	}
	return parseDRMModes(out), nil
}

func probeAudioDevices() ([]AudioDevice, error) {
	out, err := probeMPV("--audio-device=help")
	if err != nil {
		return nil, err
	}
	return parseAudioDevices(out), nil
}

// spdifCodec is one passthrough-capable codec
type spdifCodec struct {
	ID   string
	Name string
}

// spdifCodecs is the canonical codec table. The persisted passthrough
// string is always ordered by this table, never by toggle order.
var spdifCodecs = []spdifCodec{
	{"ac3", "AC-3 (Dolby Digital)"},
	{"eac3", "E-AC-3 (Dolby Digital Plus / Atmos)"},
	{"truehd", "TrueHD (Dolby TrueHD / Atmos)"},
	{"dts", "DTS"},
	{"dts-hd", "DTS-HD MA"},
}

func allSpdif() string {
	ids := make([]string, len(spdifCodecs))
	for i, c := range spdifCodecs {
		ids[i] = c.ID
	}
	return strings.Join(ids, ",")
}

func spdifSet(current string) map[string]bool {
	enabled := make(map[string]bool)
	if current == "" {
		return enabled
	}
	for _, id := range strings.Split(current, ",") {
		enabled[id] = true
	}
	return enabled
}

// toggleSpdif flips one codec in the passthrough set and re-joins the
// result in canonical table order.
func toggleSpdif(current, codecID string) string {
	enabled := spdifSet(current)
	if enabled[codecID] {
		delete(enabled, codecID)
	} else {
		enabled[codecID] = true
	}

	var ordered []string
	for _, c := range spdifCodecs {
		if enabled[c.ID] {
			ordered = append(ordered, c.ID)
		}
	}
	return strings.Join(ordered, ",")
}

// buildMPVArgs assembles the final player argv from a launch tuple. Output
// flags are emitted only when configured; track args come last before the
// stream URL.
func buildMPVArgs(launch *Launch) []string {
	args := []string{"mpv"}
	if launch.DRMConnector != "" {
		args = append(args, "--drm-connector="+launch.DRMConnector)
	}
	if launch.DRMMode != "" {
		args = append(args, "--drm-mode="+launch.DRMMode)
	}
	if launch.AudioDevice != "" {
		args = append(args, "--audio-device="+launch.AudioDevice)
	}
	if launch.AudioSpdif != "" {
		args = append(args, "--audio-spdif="+launch.AudioSpdif)
	}
	args = append(args, launch.TrackArgs...)
	args = append(args, launch.StreamURL)
	return args
}
