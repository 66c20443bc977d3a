package main

// Screen represents the active view of the application
type Screen int

const (
	ScreenLibrary Screen = iota
	ScreenSeasons
	ScreenEpisodes
	ScreenCollection
	ScreenSettings
	ScreenSettingsDRM
	ScreenSettingsDRMModes
	ScreenSettingsAudio
	ScreenSettingsSPDIF
	ScreenDetails
)

func (s Screen) isSettings() bool {
	switch s {
	case ScreenSettings, ScreenSettingsDRM, ScreenSettingsDRMModes, ScreenSettingsAudio, ScreenSettingsSPDIF:
		return true
	}
	return false
}

func (s Screen) isBrowse() bool {
	switch s {
	case ScreenLibrary, ScreenSeasons, ScreenEpisodes, ScreenCollection:
		return true
	}
	return false
}

// settingsMenu identifies an entry of the top-level settings screen
type settingsMenu int

const (
	menuDRM settingsMenu = iota
	menuAudio
	menuSPDIF
)

// rowPayload is the closed union of everything a list row can carry.
// Structural rows (separator, header, info, error) are not selectable.
type rowPayload interface {
	selectable() bool
}

type entityRow struct{ item *Item }

type settingsMenuRow struct{ menu settingsMenu }

type settingInfoRow struct{}
type separatorRow struct{}
type headerRow struct{}
type infoRow struct{}
type errorRow struct{}

type connectorRow struct {
	name  string
	modes []DisplayMode
}

type modeRow struct {
	connector string
	mode      DisplayMode
}

type clearDRMRow struct{}

type audioDeviceRow struct{ id string }

type clearAudioRow struct{}

type spdifCodecRow struct{ id string }
type spdifAllRow struct{}
type clearSPDIFRow struct{}

type playWithTracksRow struct{}

type videoTrackRow struct{ index int }
type audioTrackRow struct{ index int }

// subtitleTrackRow with a nil index is the "None (disabled)" entry
type subtitleTrackRow struct{ index *int }

type detailDRMDefaultRow struct{}

type detailDRMModeRow struct {
	connector string
	modeID    string
}

type detailAudioDefaultRow struct{}
type detailAudioDeviceRow struct{ id string }

func (entityRow) selectable() bool             { return true }
func (settingsMenuRow) selectable() bool       { return true }
func (settingInfoRow) selectable() bool        { return false }
func (separatorRow) selectable() bool          { return false }
func (headerRow) selectable() bool             { return false }
func (infoRow) selectable() bool               { return false }
func (errorRow) selectable() bool              { return false }
func (connectorRow) selectable() bool          { return true }
func (modeRow) selectable() bool               { return true }
func (clearDRMRow) selectable() bool           { return true }
func (audioDeviceRow) selectable() bool        { return true }
func (clearAudioRow) selectable() bool         { return true }
func (spdifCodecRow) selectable() bool         { return true }
func (spdifAllRow) selectable() bool           { return true }
func (clearSPDIFRow) selectable() bool         { return true }
func (playWithTracksRow) selectable() bool     { return true }
func (videoTrackRow) selectable() bool         { return true }
func (audioTrackRow) selectable() bool         { return true }
func (subtitleTrackRow) selectable() bool      { return true }
func (detailDRMDefaultRow) selectable() bool   { return true }
func (detailDRMModeRow) selectable() bool      { return true }
func (detailAudioDefaultRow) selectable() bool { return true }
func (detailAudioDeviceRow) selectable() bool  { return true }

// Row is one entry of the active list
type Row struct {
	title      string
	annotation string
	payload    rowPayload
}

// navFrame is the union of per-screen resumption contexts pushed on forward
// navigation. Popping a frame yields exactly the fields its screen needs to
// re-fetch its rows.
type navFrame interface {
	screen() Screen
	frameTitle() string
}

type libraryFrame struct{ title string }

type seasonsFrame struct {
	seriesID   string
	seriesName string
	title      string
}

type episodesFrame struct {
	seriesID   string
	seriesName string
	seasonID   string
	title      string
}

type collectionFrame struct {
	collectionID   string
	collectionName string
	title          string
}

type settingsFrame struct{}

type settingsDRMFrame struct{}

func (f libraryFrame) screen() Screen     { return ScreenLibrary }
func (f seasonsFrame) screen() Screen     { return ScreenSeasons }
func (f episodesFrame) screen() Screen    { return ScreenEpisodes }
func (f collectionFrame) screen() Screen  { return ScreenCollection }
func (f settingsFrame) screen() Screen    { return ScreenSettings }
func (f settingsDRMFrame) screen() Screen { return ScreenSettingsDRM }

func (f libraryFrame) frameTitle() string     { return f.title }
func (f seasonsFrame) frameTitle() string     { return f.title }
func (f episodesFrame) frameTitle() string    { return f.title }
func (f collectionFrame) frameTitle() string  { return f.title }
func (f settingsFrame) frameTitle() string    { return "Settings" }
func (f settingsDRMFrame) frameTitle() string { return "Settings - DRM Output" }

// Launch is the tuple handed to the mpv invocation boundary when the
// navigator decides to play.
type Launch struct {
	StreamURL    string
	DRMConnector string
	DRMMode      string
	AudioDevice  string
	AudioSpdif   string
	TrackArgs    []string
}

// KeyMappings contains the help text for key bindings
type KeyMappings struct {
	Navigate string
	Select   string
	Back     string
	Search   string
	Settings string
	Watched  string
	Library  string
	Details  string
	Play     string
	Quit     string
}

var Keys = KeyMappings{
	Navigate: "↑↓: navigate",
	Select:   "enter: select",
	Back:     "esc: back",
	Search:   "/: search",
	Settings: "s: settings",
	Watched:  "w: watched",
	Library:  "l: library",
	Details:  "i: details",
	Play:     "p: play",
	Quit:     "q: quit",
}
