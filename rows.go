package main

import (
	"fmt"
	"strings"
)

func itemPointers(items []Item) []*Item {
	ptrs := make([]*Item, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	return ptrs
}

func (a *App) entityRows(items []*Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		title, annotation := formatItem(item, a.chars)
		rows = append(rows, Row{title: title, annotation: annotation, payload: entityRow{item: item}})
	}
	return rows
}

func (a *App) settingsRows() []Row {
	cs := a.chars

	drmStatus := "Not configured"
	switch {
	case a.cfg.MPV.DRMConnector != "" && a.cfg.MPV.DRMMode != "":
		drmStatus = fmt.Sprintf("%s mode %s", a.cfg.MPV.DRMConnector, a.cfg.MPV.DRMMode)
	case a.cfg.MPV.DRMConnector != "":
		drmStatus = a.cfg.MPV.DRMConnector
	}

	audioStatus := "auto"
	if a.cfg.MPV.AudioDevice != "" {
		audioStatus = a.cfg.MPV.AudioDevice
	}

	spdifStatus := "disabled"
	if a.cfg.MPV.AudioSpdif != "" {
		spdifStatus = a.cfg.MPV.AudioSpdif
	}

	return []Row{
		{title: fmt.Sprintf("%s DRM Output: %s", cs.Display, drmStatus), payload: settingsMenuRow{menu: menuDRM}},
		{title: fmt.Sprintf("%s Audio Device: %s", cs.Audio, audioStatus), payload: settingsMenuRow{menu: menuAudio}},
		{title: fmt.Sprintf("%s Audio Passthrough: %s", cs.Audio, spdifStatus), payload: settingsMenuRow{menu: menuSPDIF}},
	}
}

func (a *App) drmSettingsRows() []Row {
	cs := a.chars

	current := "Current: No DRM output configured"
	switch {
	case a.cfg.MPV.DRMConnector != "" && a.cfg.MPV.DRMMode != "":
		current = fmt.Sprintf("Current: %s mode %s", a.cfg.MPV.DRMConnector, a.cfg.MPV.DRMMode)
	case a.cfg.MPV.DRMConnector != "":
		current = fmt.Sprintf("Current: %s (no mode set)", a.cfg.MPV.DRMConnector)
	}

	rows := []Row{
		{title: fmt.Sprintf("%s %s", cs.Settings, current), payload: settingInfoRow{}},
		{title: fmt.Sprintf("%s Clear DRM settings", cs.Clear), payload: clearDRMRow{}},
		{title: cs.Separator, payload: separatorRow{}},
	}

	a.loadDeviceCaches()

	if a.drmErr != nil {
		rows = append(rows, Row{title: fmt.Sprintf("%s Error: %v", cs.Error, a.drmErr), payload: errorRow{}})
		return rows
	}
	if len(a.drmConnectors) == 0 {
		rows = append(rows, Row{title: fmt.Sprintf("%s No DRM connectors found", cs.Info), payload: infoRow{}})
		return rows
	}

	for _, conn := range a.drmConnectors {
		marker := "  "
		if conn.Name == a.cfg.MPV.DRMConnector {
			marker = cs.Watched + " "
		}
		rows = append(rows, Row{
			title:   fmt.Sprintf("%s%s %s (%d modes)", marker, cs.Connector, conn.Name, len(conn.Modes)),
			payload: connectorRow{name: conn.Name, modes: conn.Modes},
		})
	}
	return rows
}

func (a *App) modeRows(connectorName string) []Row {
	cs := a.chars

	var modes []DisplayMode
	for _, conn := range a.drmConnectors {
		if conn.Name == connectorName {
			modes = conn.Modes
			break
		}
	}

	if len(modes) == 0 {
		return []Row{{title: fmt.Sprintf("%s No modes available for this connector", cs.Info), payload: infoRow{}}}
	}

	rows := make([]Row, 0, len(modes))
	for _, mode := range modes {
		marker := "  "
		if connectorName == a.cfg.MPV.DRMConnector && mode.ID == a.cfg.MPV.DRMMode {
			marker = cs.Watched + " "
		}
		rows = append(rows, Row{
			title:   fmt.Sprintf("%s%s %s", marker, cs.Display, mode.Display),
			payload: modeRow{connector: connectorName, mode: mode},
		})
	}
	return rows
}

func (a *App) audioSettingsRows() []Row {
	cs := a.chars

	current := "Current: auto (default)"
	if a.cfg.MPV.AudioDevice != "" {
		current = "Current: " + a.cfg.MPV.AudioDevice
	}

	rows := []Row{
		{title: fmt.Sprintf("%s %s", cs.Settings, current), payload: settingInfoRow{}},
		{title: fmt.Sprintf("%s Clear audio device (use auto)", cs.Clear), payload: clearAudioRow{}},
		{title: cs.Separator, payload: separatorRow{}},
	}

	a.loadDeviceCaches()

	if a.audioErr != nil {
		rows = append(rows, Row{title: fmt.Sprintf("%s Error: %v", cs.Error, a.audioErr), payload: errorRow{}})
		return rows
	}
	if len(a.audioDevices) == 0 {
		rows = append(rows, Row{title: fmt.Sprintf("%s No audio devices found", cs.Info), payload: infoRow{}})
		return rows
	}

	for _, device := range a.audioDevices {
		marker := "  "
		if device.ID == a.cfg.MPV.AudioDevice {
			marker = cs.Watched + " "
		}
		title := fmt.Sprintf("%s%s %s", marker, cs.Audio, device.ID)
		if device.Description != "" {
			title += fmt.Sprintf(" (%s)", device.Description)
		}
		rows = append(rows, Row{title: title, payload: audioDeviceRow{id: device.ID}})
	}
	return rows
}

func (a *App) spdifSettingsRows() []Row {
	cs := a.chars

	current := "Current: disabled"
	if a.cfg.MPV.AudioSpdif != "" {
		current = "Current: " + a.cfg.MPV.AudioSpdif
	}

	allMarker := "  "
	if a.cfg.MPV.AudioSpdif == allSpdif() {
		allMarker = cs.Watched + " "
	}

	rows := []Row{
		{title: fmt.Sprintf("%s %s", cs.Settings, current), payload: settingInfoRow{}},
		{title: fmt.Sprintf("%s Disable passthrough (decode all)", cs.Clear), payload: clearSPDIFRow{}},
		{title: fmt.Sprintf("%s%s Enable all passthrough", allMarker, cs.Audio), payload: spdifAllRow{}},
		{title: cs.Separator, payload: separatorRow{}},
		{title: fmt.Sprintf("%s Toggle individual codecs:", cs.Info), payload: infoRow{}},
	}

	enabled := spdifSet(a.cfg.MPV.AudioSpdif)
	for _, codec := range spdifCodecs {
		marker := "  "
		if enabled[codec.ID] {
			marker = cs.Watched + " "
		}
		rows = append(rows, Row{
			title:   fmt.Sprintf("%s%s %s", marker, cs.Audio, codec.Name),
			payload: spdifCodecRow{id: codec.ID},
		})
	}
	return rows
}

func (a *App) detailRows() []Row {
	cs := a.chars

	marker := func(selected bool) string {
		if selected {
			return cs.Selected + " "
		}
		return cs.Unselected + " "
	}

	rows := []Row{
		{title: fmt.Sprintf("%s  Play with selected tracks", cs.Play), payload: playWithTracksRow{}},
		{title: cs.Separator, payload: separatorRow{}},
	}

	var videoStreams, audioStreams, subtitleStreams []MediaStream
	for _, stream := range a.detailStreams {
		switch stream.Type {
		case "Video":
			videoStreams = append(videoStreams, stream)
		case "Audio":
			audioStreams = append(audioStreams, stream)
		case "Subtitle":
			subtitleStreams = append(subtitleStreams, stream)
		}
	}

	if len(videoStreams) > 0 {
		rows = append(rows, Row{title: "VIDEO TRACKS", payload: headerRow{}})
		for _, stream := range videoStreams {
			parts := []string{strings.ToUpper(orDefault(stream.Codec, "unknown"))}
			if stream.Width > 0 && stream.Height > 0 {
				parts = append(parts, fmt.Sprintf("%dx%d", stream.Width, stream.Height))
			}
			if fps := streamFrameRate(stream); fps != "" {
				parts = append(parts, fps)
			}
			selected := a.selVideo != nil && *a.selVideo == stream.Index
			rows = append(rows, Row{
				title:   fmt.Sprintf("  %s%s", marker(selected), strings.Join(parts, " / ")),
				payload: videoTrackRow{index: stream.Index},
			})
		}
	}

	if len(audioStreams) > 0 {
		rows = append(rows, Row{title: "AUDIO TRACKS", payload: headerRow{}})
		for _, stream := range audioStreams {
			var parts []string
			if stream.Language != "" {
				parts = append(parts, strings.ToUpper(stream.Language))
			}
			if stream.Codec != "" {
				parts = append(parts, strings.ToUpper(stream.Codec))
			}
			switch stream.Channels {
			case 0:
			case 2:
				parts = append(parts, "Stereo")
			case 6:
				parts = append(parts, "5.1")
			case 8:
				parts = append(parts, "7.1")
			default:
				parts = append(parts, fmt.Sprintf("%dch", stream.Channels))
			}
			selected := a.selAudio != nil && *a.selAudio == stream.Index
			rows = append(rows, Row{
				title:   fmt.Sprintf("  %s%s", marker(selected), strings.Join(parts, " / ")),
				payload: audioTrackRow{index: stream.Index},
			})
		}
	}

	rows = append(rows, Row{title: "SUBTITLE TRACKS", payload: headerRow{}})
	rows = append(rows, Row{
		title:   fmt.Sprintf("  %sNone (disabled)", marker(a.selSubtitle == nil)),
		payload: subtitleTrackRow{index: nil},
	})
	for _, stream := range subtitleStreams {
		var parts []string
		if stream.Language != "" {
			parts = append(parts, strings.ToUpper(stream.Language))
		}
		if stream.Codec != "" {
			parts = append(parts, strings.ToUpper(stream.Codec))
		}
		if stream.IsForced {
			parts = append(parts, "Forced")
		}
		desc := strings.Join(parts, " / ")
		if desc == "" {
			desc = fmt.Sprintf("Track %d", stream.Index)
		}
		selected := a.selSubtitle != nil && *a.selSubtitle == stream.Index
		index := stream.Index
		rows = append(rows, Row{
			title:   fmt.Sprintf("  %s%s", marker(selected), desc),
			payload: subtitleTrackRow{index: &index},
		})
	}

	rows = append(rows, Row{title: cs.Separator, payload: separatorRow{}})

	// Per-playback output overrides: nil means inherit the persisted default
	rows = append(rows, Row{title: "DRM OUTPUT (for this playback)", payload: headerRow{}})

	isDefaultDRM := a.detailDRMConnector == nil
	defaultDesc := "Default (none)"
	if a.cfg.MPV.DRMConnector != "" {
		defaultDesc = fmt.Sprintf("Default (%s mode %s)", a.cfg.MPV.DRMConnector, a.cfg.MPV.DRMMode)
	}
	rows = append(rows, Row{
		title:   fmt.Sprintf("  %s%s", marker(isDefaultDRM), defaultDesc),
		payload: detailDRMDefaultRow{},
	})

	if a.drmErr == nil {
		for _, conn := range a.drmConnectors {
			for _, mode := range conn.Modes {
				selected := !isDefaultDRM &&
					*a.detailDRMConnector == conn.Name &&
					a.detailDRMMode != nil && *a.detailDRMMode == mode.ID
				rows = append(rows, Row{
					title:   fmt.Sprintf("  %s%s: %s", marker(selected), conn.Name, mode.Display),
					payload: detailDRMModeRow{connector: conn.Name, modeID: mode.ID},
				})
			}
		}
	}

	rows = append(rows, Row{title: "AUDIO DEVICE (for this playback)", payload: headerRow{}})

	isDefaultAudio := a.detailAudioDevice == nil
	defaultDesc = "Default (auto)"
	if a.cfg.MPV.AudioDevice != "" {
		defaultDesc = fmt.Sprintf("Default (%s)", a.cfg.MPV.AudioDevice)
	}
	rows = append(rows, Row{
		title:   fmt.Sprintf("  %s%s", marker(isDefaultAudio), defaultDesc),
		payload: detailAudioDefaultRow{},
	})

	if a.audioErr == nil {
		for _, device := range a.audioDevices {
			selected := !isDefaultAudio && *a.detailAudioDevice == device.ID
			display := device.ID
			if device.Description != "" {
				display = device.Description
			}
			rows = append(rows, Row{
				title:   fmt.Sprintf("  %s%s", marker(selected), display),
				payload: detailAudioDeviceRow{id: device.ID},
			})
		}
	}

	return rows
}

func streamFrameRate(stream MediaStream) string {
	if stream.RealFrameRate > 0 {
		return fmt.Sprintf("%.2ffps", stream.RealFrameRate)
	}
	if stream.AverageFrameRate > 0 {
		return fmt.Sprintf("%.2ffps", stream.AverageFrameRate)
	}
	return ""
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
