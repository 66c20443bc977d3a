package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDRMOutput = `Available modes for drm-connector=0.HDMI-A-1
  Mode 0: 3840x2160 (3840x2160@60.00Hz)
  Mode 1: 1920x1080 (1920x1080@60.00Hz)
  Mode 2: 1920x1080 (1920x1080@50.00Hz)
Available modes for drm-connector=1.DP-1
  Mode 0: 2560x1440 (2560x1440@144.00Hz)
`

const sampleAudioOutput = `List of detected audio devices:
  'auto' (Autoselect device)
  'alsa' (Default (alsa))
  'alsa/hdmi:CARD=PCH,DEV=0' (HDA Intel PCH, ALC892 Digital)
`

func TestParseDRMModes(t *testing.T) {
	connectors := parseDRMModes(sampleDRMOutput)

	require.Len(t, connectors, 2)
	assert.Equal(t, "HDMI-A-1", connectors[0].Name)
	require.Len(t, connectors[0].Modes, 3)
	assert.Equal(t, "0", connectors[0].Modes[0].ID)
	assert.Equal(t, "3840x2160 @ 60.00Hz", connectors[0].Modes[0].Display)
	assert.Equal(t, "1920x1080 @ 50.00Hz", connectors[0].Modes[2].Display)

	assert.Equal(t, "DP-1", connectors[1].Name)
	require.Len(t, connectors[1].Modes, 1)
	assert.Equal(t, "2560x1440 @ 144.00Hz", connectors[1].Modes[0].Display)
}

func TestParseDRMModesEmpty(t *testing.T) {
	assert.Empty(t, parseDRMModes("no drm support here\n"))
}

func TestParseDRMModesIgnoresModesBeforeConnector(t *testing.T) {
	out := "  Mode 0: 1920x1080 (1920x1080@60.00Hz)\n"
	assert.Empty(t, parseDRMModes(out))
}

func TestParseAudioDevices(t *testing.T) {
	devices := parseAudioDevices(sampleAudioOutput)

	require.Len(t, devices, 3)
	assert.Equal(t, "auto", devices[0].ID)
	assert.Equal(t, "Autoselect device", devices[0].Description)
	assert.Equal(t, "alsa/hdmi:CARD=PCH,DEV=0", devices[2].ID)
	assert.Equal(t, "HDA Intel PCH, ALC892 Digital", devices[2].Description)
}

func TestToggleSpdifCanonicalOrder(t *testing.T) {
	// toggling in arbitrary order keeps the canonical table order
	s := toggleSpdif("", "eac3")
	s = toggleSpdif(s, "ac3")
	s = toggleSpdif(s, "dts")
	assert.Equal(t, "ac3,eac3,dts", s)

	s = toggleSpdif(s, "ac3")
	assert.Equal(t, "eac3,dts", s)
}

func TestToggleSpdifRoundTrip(t *testing.T) {
	s := toggleSpdif("", "truehd")
	assert.Equal(t, "truehd", s)
	assert.Equal(t, "", toggleSpdif(s, "truehd"))
}

func TestAllSpdif(t *testing.T) {
	assert.Equal(t, "ac3,eac3,truehd,dts,dts-hd", allSpdif())
}

func TestBuildMPVArgs(t *testing.T) {
	launch := &Launch{
		StreamURL:    "http://server/Items/42/Download?api_key=k",
		DRMConnector: "HDMI-A-1",
		DRMMode:      "3",
		AudioSpdif:   "ac3,dts",
		TrackArgs:    []string{"--aid=2", "--sid=no"},
	}

	args := buildMPVArgs(launch)

	assert.Equal(t, []string{
		"mpv",
		"--drm-connector=HDMI-A-1",
		"--drm-mode=3",
		"--audio-spdif=ac3,dts",
		"--aid=2",
		"--sid=no",
		"http://server/Items/42/Download?api_key=k",
	}, args)
}

func TestBuildMPVArgsMinimal(t *testing.T) {
	args := buildMPVArgs(&Launch{StreamURL: "http://server/stream"})
	assert.Equal(t, []string{"mpv", "http://server/stream"}, args)
}
