package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

const appTitle = "Jellypick"

// startBrowseMsg triggers the initial library load once the program is up
type startBrowseMsg struct{}

// App is the view navigator: it owns the current screen, the row list, the
// back-navigation stack and the ephemeral/persisted playback settings.
type App struct {
	cfg    *Config
	client *Client
	chars  *Charset
	log    zerolog.Logger

	screen   Screen
	rows     []Row
	cursor   int
	navStack []navFrame
	title    string
	subtitle string

	search        textinput.Model
	searchFocused bool

	libraries    []Library
	libraryIndex int

	// root library list, kept in memory so search filters without a
	// network round trip
	allItems []Item

	seriesID       string
	seriesName     string
	seasonID       string
	collectionID   string
	collectionName string

	// device capability caches, computed at most once per run
	drmConnectors []Connector
	drmErr        error
	drmLoaded     bool
	audioDevices  []AudioDevice
	audioErr      error
	audioLoaded   bool

	selectedConnector string

	// details screen state, discarded whenever the screen is exited
	detailItem         *Item
	detailStreams      []MediaStream
	selVideo           *int
	selAudio           *int
	selSubtitle        *int
	detailDRMConnector *string
	detailDRMMode      *string
	detailAudioDevice  *string

	// set when the user decides to play; read by main after the program
	// exits
	result *Launch

	width  int
	height int
}

func NewApp(cfg *Config, client *Client, chars *Charset, log zerolog.Logger) *App {
	search := textinput.New()
	search.Placeholder = "Search titles..."
	search.Prompt = "/ "
	search.CharLimit = 100

	return &App{
		cfg:    cfg,
		client: client,
		chars:  chars,
		log:    log,
		screen: ScreenLibrary,
		cursor: -1,
		title:  appTitle,
		search: search,
	}
}

func (a *App) Init() tea.Cmd {
	return func() tea.Msg { return startBrowseMsg{} }
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case startBrowseMsg:
		a.initialLoad()
		return a, nil
	case tea.KeyMsg:
		return a.handleKeyPress(msg)
	}
	return a, nil
}

// initialLoad fetches libraries and the root item list, then pre-warms the
// device caches before the next user intent is accepted.
func (a *App) initialLoad() {
	a.subtitle = "Loading..."

	libraries, err := a.client.Libraries()
	if err != nil {
		a.log.Error().Err(err).Msg("library list fetch failed")
		a.subtitle = fmt.Sprintf("Error: %v", err)
		return
	}
	a.libraries = libraries

	items, err := a.client.LibraryItems(a.currentLibraryID())
	if err != nil {
		a.subtitle = fmt.Sprintf("Error: %v", err)
		return
	}
	a.allItems = items
	a.setRows(a.entityRows(itemPointers(a.allItems)))
	a.subtitle = fmt.Sprintf("%d items", len(a.allItems))

	a.loadDeviceCaches()
}

func (a *App) currentLibraryID() string {
	if len(a.libraries) == 0 || a.libraryIndex < 0 || a.libraryIndex >= len(a.libraries) {
		return ""
	}
	return a.libraries[a.libraryIndex].ID
}

// loadDeviceCaches populates the DRM and audio capability caches if still
// empty. Safe to call from every screen that needs them.
func (a *App) loadDeviceCaches() {
	if !a.drmLoaded {
		a.drmConnectors, a.drmErr = probeDRMModes()
		a.drmLoaded = true
		if a.drmErr != nil {
			a.log.Warn().Err(a.drmErr).Msg("drm capability probe failed")
		}
	}
	if !a.audioLoaded {
		a.audioDevices, a.audioErr = probeAudioDevices()
		a.audioLoaded = true
		if a.audioErr != nil {
			a.log.Warn().Err(a.audioErr).Msg("audio capability probe failed")
		}
	}
}

// ============================================================================
// Row list bookkeeping
// ============================================================================

func firstSelectable(rows []Row) int {
	for i, row := range rows {
		if row.payload.selectable() {
			return i
		}
	}
	return -1
}

func (a *App) setRows(rows []Row) {
	a.rows = rows
	a.cursor = firstSelectable(rows)
}

// setRowsKeepCursor re-renders in place, holding the highlight where it was
// when the row is still selectable.
func (a *App) setRowsKeepCursor(rows []Row) {
	cursor := a.cursor
	a.rows = rows
	if cursor >= 0 && cursor < len(rows) && rows[cursor].payload.selectable() {
		a.cursor = cursor
	} else {
		a.cursor = firstSelectable(rows)
	}
}

// moveCursor advances the highlight by delta, skipping structural rows and
// wrapping around the list.
func (a *App) moveCursor(delta int) {
	if len(a.rows) == 0 || a.cursor < 0 {
		return
	}
	i := a.cursor
	for range a.rows {
		i = (i + delta + len(a.rows)) % len(a.rows)
		if a.rows[i].payload.selectable() {
			a.cursor = i
			return
		}
	}
}

func (a *App) highlighted() rowPayload {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return a.rows[a.cursor].payload
}

// ============================================================================
// Key handling
// ============================================================================

func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searchFocused {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		a.moveCursor(-1)
	case "down", "j":
		a.moveCursor(1)
	case "enter":
		return a.selectCurrent()
	case "esc", "backspace":
		a.goBack()
	case "/", "ctrl+f":
		if a.screen == ScreenLibrary {
			a.searchFocused = true
			return a, a.search.Focus()
		}
	case "s":
		a.openSettings()
	case "w":
		a.toggleWatched()
	case "l":
		a.cycleLibrary()
	case "i":
		a.openDetails()
	case "p":
		return a.play()
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.searchFocused = false
		a.search.Blur()
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.applySearch()
	return a, cmd
}

// applySearch filters the in-memory root list by case-insensitive substring
// match; no network round trip.
func (a *App) applySearch() {
	if a.screen != ScreenLibrary {
		return
	}
	filtered := a.filteredItems()
	a.setRows(a.entityRows(filtered))
	a.subtitle = fmt.Sprintf("%d items", len(filtered))
}

func (a *App) filteredItems() []*Item {
	query := strings.ToLower(a.search.Value())
	if query == "" {
		return itemPointers(a.allItems)
	}
	var filtered []*Item
	for i := range a.allItems {
		if strings.Contains(strings.ToLower(a.allItems[i].Name), query) {
			filtered = append(filtered, &a.allItems[i])
		}
	}
	return filtered
}

func (a *App) resetSearch() {
	a.search.SetValue("")
	a.search.Blur()
	a.searchFocused = false
}

// ============================================================================
// Selection dispatch
// ============================================================================

func (a *App) selectCurrent() (tea.Model, tea.Cmd) {
	switch payload := a.highlighted().(type) {
	case nil:
		// empty list

	case entityRow:
		switch payload.item.Type {
		case ItemSeries:
			a.navigateToSeasons(payload.item)
		case ItemBoxSet:
			a.navigateToCollection(payload.item)
		case ItemSeason:
			a.navigateToEpisodes(payload.item)
		case ItemMovie, ItemEpisode:
			return a.playItem(payload.item)
		}

	case settingsMenuRow:
		a.openSettingsSubmenu(payload.menu)

	case connectorRow:
		a.navigateToModes(payload.name)

	case modeRow:
		a.selectMode(payload)

	case clearDRMRow:
		a.clearDRMSettings()

	case audioDeviceRow:
		a.selectAudioDevice(payload.id)

	case clearAudioRow:
		a.clearAudioSettings()

	case clearSPDIFRow:
		a.clearSpdifSettings()

	case spdifAllRow:
		a.enableAllSpdif()

	case spdifCodecRow:
		a.toggleSpdifCodec(payload.id)

	case playWithTracksRow:
		return a.playWithTracks()

	case videoTrackRow:
		index := payload.index
		a.selVideo = &index
		a.setRowsKeepCursor(a.detailRows())

	case audioTrackRow:
		index := payload.index
		a.selAudio = &index
		a.setRowsKeepCursor(a.detailRows())

	case subtitleTrackRow:
		a.selSubtitle = payload.index
		a.setRowsKeepCursor(a.detailRows())

	case detailDRMDefaultRow:
		a.detailDRMConnector = nil
		a.detailDRMMode = nil
		a.setRowsKeepCursor(a.detailRows())

	case detailDRMModeRow:
		connector, modeID := payload.connector, payload.modeID
		a.detailDRMConnector = &connector
		a.detailDRMMode = &modeID
		a.setRowsKeepCursor(a.detailRows())

	case detailAudioDefaultRow:
		a.detailAudioDevice = nil
		a.setRowsKeepCursor(a.detailRows())

	case detailAudioDeviceRow:
		id := payload.id
		a.detailAudioDevice = &id
		a.setRowsKeepCursor(a.detailRows())
	}

	return a, nil
}

// ============================================================================
// Forward navigation
// ============================================================================

// currentFrame captures the screen being left plus its resumption context
func (a *App) currentFrame() navFrame {
	switch a.screen {
	case ScreenSeasons:
		return seasonsFrame{seriesID: a.seriesID, seriesName: a.seriesName, title: a.title}
	case ScreenEpisodes:
		return episodesFrame{seriesID: a.seriesID, seriesName: a.seriesName, seasonID: a.seasonID, title: a.title}
	case ScreenCollection:
		return collectionFrame{collectionID: a.collectionID, collectionName: a.collectionName, title: a.title}
	case ScreenSettings:
		return settingsFrame{}
	case ScreenSettingsDRM:
		return settingsDRMFrame{}
	default:
		return libraryFrame{title: a.title}
	}
}

func (a *App) pushFrame() {
	a.navStack = append(a.navStack, a.currentFrame())
}

func (a *App) navigateToSeasons(series *Item) {
	seasons, err := a.client.Seasons(series.ID)
	if err != nil {
		a.subtitle = fmt.Sprintf("Error loading seasons: %v", err)
		return
	}

	a.pushFrame()
	a.screen = ScreenSeasons
	a.seriesID = series.ID
	a.seriesName = series.Name
	a.resetSearch()
	a.setRows(a.entityRows(itemPointers(seasons)))
	a.title = series.Name
	a.subtitle = fmt.Sprintf("%d seasons", len(seasons))
}

func (a *App) navigateToEpisodes(season *Item) {
	seriesID := season.SeriesID
	if seriesID == "" {
		seriesID = a.seriesID
	}

	episodes, err := a.client.Episodes(seriesID, season.ID)
	if err != nil {
		a.subtitle = fmt.Sprintf("Error loading episodes: %v", err)
		return
	}

	a.pushFrame()
	a.screen = ScreenEpisodes
	a.seasonID = season.ID
	a.setRows(a.entityRows(itemPointers(episodes)))
	a.title = fmt.Sprintf("%s - %s", a.seriesName, season.Name)
	a.subtitle = fmt.Sprintf("%d episodes", len(episodes))
}

func (a *App) navigateToCollection(boxset *Item) {
	items, err := a.client.CollectionItems(boxset.ID)
	if err != nil {
		a.subtitle = fmt.Sprintf("Error loading collection: %v", err)
		return
	}

	a.pushFrame()
	a.screen = ScreenCollection
	a.collectionID = boxset.ID
	a.collectionName = boxset.Name
	a.resetSearch()
	a.setRows(a.entityRows(itemPointers(items)))
	a.title = boxset.Name
	a.subtitle = fmt.Sprintf("%d items", len(items))
}

func (a *App) openSettings() {
	// No resumption frame exists for the details screen, so settings are
	// reachable from browse screens only
	if a.screen.isSettings() || a.screen == ScreenDetails {
		return
	}

	a.pushFrame()
	a.screen = ScreenSettings
	a.title = "Settings"
	a.resetSearch()
	a.setRows(a.settingsRows())
	a.subtitle = "MPV options"
}

func (a *App) openSettingsSubmenu(menu settingsMenu) {
	a.pushFrame()

	switch menu {
	case menuDRM:
		a.screen = ScreenSettingsDRM
		a.title = "Settings - DRM Output"
		a.setRows(a.drmSettingsRows())
		a.subtitle = "Select a connector"
	case menuAudio:
		a.screen = ScreenSettingsAudio
		a.title = "Settings - Audio Device"
		a.setRows(a.audioSettingsRows())
		a.subtitle = "Select an audio device"
	case menuSPDIF:
		a.screen = ScreenSettingsSPDIF
		a.title = "Settings - Audio Passthrough"
		a.setRows(a.spdifSettingsRows())
		a.subtitle = "Toggle passthrough codecs"
	}
}

func (a *App) navigateToModes(connectorName string) {
	a.pushFrame()
	a.screen = ScreenSettingsDRMModes
	a.selectedConnector = connectorName
	rows := a.modeRows(connectorName)
	a.setRows(rows)
	a.title = "Settings - " + connectorName
	a.subtitle = fmt.Sprintf("%d modes", len(rows))
}

func (a *App) openDetails() {
	if a.screen.isSettings() || a.screen == ScreenDetails {
		return
	}

	payload, ok := a.highlighted().(entityRow)
	if !ok || !isPlayableKind(payload.item.Type) {
		return
	}

	streams, err := a.client.MediaStreams(payload.item.ID)
	if err != nil {
		a.subtitle = fmt.Sprintf("Error loading details: %v", err)
		return
	}

	a.pushFrame()
	a.screen = ScreenDetails
	a.detailItem = payload.item
	a.detailStreams = streams
	a.clearDetailOverrides()
	a.loadDeviceCaches()
	a.setRows(a.detailRows())
	a.title = "Details: " + payload.item.Name
	a.subtitle = "Select tracks and press Enter to play"
}

// clearDetailOverrides resets every per-playback override to "inherit the
// persisted default"
func (a *App) clearDetailOverrides() {
	a.selVideo = nil
	a.selAudio = nil
	a.selSubtitle = nil
	a.detailDRMConnector = nil
	a.detailDRMMode = nil
	a.detailAudioDevice = nil
}

// ============================================================================
// Back navigation
// ============================================================================

func (a *App) goBack() {
	if len(a.navStack) == 0 {
		return
	}

	frame := a.navStack[len(a.navStack)-1]
	a.navStack = a.navStack[:len(a.navStack)-1]

	// leaving details always discards its ephemeral state
	a.detailItem = nil
	a.detailStreams = nil
	a.clearDetailOverrides()

	a.screen = frame.screen()
	a.title = frame.frameTitle()

	switch frame := frame.(type) {
	case libraryFrame:
		a.seriesID = ""
		a.seriesName = ""
		a.seasonID = ""
		a.collectionID = ""
		a.collectionName = ""
		a.resetSearch()
		items, err := a.client.LibraryItems(a.currentLibraryID())
		if err != nil {
			// keep the cached list usable
			a.setRows(a.entityRows(itemPointers(a.allItems)))
			a.subtitle = fmt.Sprintf("Refresh failed: %v", err)
			return
		}
		a.allItems = items
		a.setRows(a.entityRows(itemPointers(a.allItems)))
		a.subtitle = fmt.Sprintf("%d items", len(a.allItems))

	case seasonsFrame:
		a.seriesID = frame.seriesID
		a.seriesName = frame.seriesName
		a.seasonID = ""
		seasons, err := a.client.Seasons(frame.seriesID)
		if err != nil {
			a.subtitle = fmt.Sprintf("Error: %v", err)
			return
		}
		a.setRows(a.entityRows(itemPointers(seasons)))
		a.subtitle = fmt.Sprintf("%d seasons", len(seasons))

	case episodesFrame:
		a.seriesID = frame.seriesID
		a.seriesName = frame.seriesName
		a.seasonID = frame.seasonID
		episodes, err := a.client.Episodes(frame.seriesID, frame.seasonID)
		if err != nil {
			a.subtitle = fmt.Sprintf("Error: %v", err)
			return
		}
		a.setRows(a.entityRows(itemPointers(episodes)))
		a.subtitle = fmt.Sprintf("%d episodes", len(episodes))

	case collectionFrame:
		a.collectionID = frame.collectionID
		a.collectionName = frame.collectionName
		items, err := a.client.CollectionItems(frame.collectionID)
		if err != nil {
			a.subtitle = fmt.Sprintf("Error: %v", err)
			return
		}
		a.setRows(a.entityRows(itemPointers(items)))
		a.subtitle = fmt.Sprintf("%d items", len(items))

	case settingsFrame:
		a.setRows(a.settingsRows())
		a.subtitle = "MPV options"

	case settingsDRMFrame:
		a.setRows(a.drmSettingsRows())
		a.subtitle = "Select a connector"
	}
}

// ============================================================================
// Settings actions
// ============================================================================

// saveSettings flushes the in-memory playback config to the store. Write
// failures surface on the status line like fetch errors.
func (a *App) saveSettings(okSubtitle string) {
	if err := a.cfg.Save(); err != nil {
		a.log.Error().Err(err).Msg("settings write failed")
		a.subtitle = fmt.Sprintf("Error saving settings: %v", err)
		return
	}
	a.subtitle = okSubtitle
}

func (a *App) selectMode(payload modeRow) {
	a.cfg.MPV.DRMConnector = payload.connector
	a.cfg.MPV.DRMMode = payload.mode.ID
	a.saveSettings(fmt.Sprintf("Selected: %s mode %s", payload.connector, payload.mode.ID))
	a.setRowsKeepCursor(a.modeRows(a.selectedConnector))
}

func (a *App) clearDRMSettings() {
	a.cfg.MPV.DRMConnector = ""
	a.cfg.MPV.DRMMode = ""
	a.saveSettings("DRM settings cleared")
	a.setRowsKeepCursor(a.drmSettingsRows())
}

func (a *App) selectAudioDevice(id string) {
	a.cfg.MPV.AudioDevice = id
	a.saveSettings("Selected: " + id)
	a.setRowsKeepCursor(a.audioSettingsRows())
}

func (a *App) clearAudioSettings() {
	a.cfg.MPV.AudioDevice = ""
	a.saveSettings("Audio device cleared (using auto)")
	a.setRowsKeepCursor(a.audioSettingsRows())
}

func (a *App) clearSpdifSettings() {
	a.cfg.MPV.AudioSpdif = ""
	a.saveSettings("Audio passthrough disabled")
	a.setRowsKeepCursor(a.spdifSettingsRows())
}

func (a *App) enableAllSpdif() {
	a.cfg.MPV.AudioSpdif = allSpdif()
	a.saveSettings("Passthrough: " + a.cfg.MPV.AudioSpdif)
	a.setRowsKeepCursor(a.spdifSettingsRows())
}

func (a *App) toggleSpdifCodec(codecID string) {
	a.cfg.MPV.AudioSpdif = toggleSpdif(a.cfg.MPV.AudioSpdif, codecID)
	subtitle := "Passthrough disabled"
	if a.cfg.MPV.AudioSpdif != "" {
		subtitle = "Passthrough: " + a.cfg.MPV.AudioSpdif
	}
	a.saveSettings(subtitle)
	a.setRowsKeepCursor(a.spdifSettingsRows())
}

// ============================================================================
// Watch state
// ============================================================================

// toggleWatched flips the highlighted entity between watched and unwatched.
// Any partially watched state counts as watched for the purpose of the
// toggle, so it resets to unwatched.
func (a *App) toggleWatched() {
	if a.screen.isSettings() || a.screen == ScreenDetails {
		return
	}

	payload, ok := a.highlighted().(entityRow)
	if !ok {
		return
	}
	item := payload.item

	ud := item.UserData
	isPartiallyWatched := !ud.Played && (ud.PlayedPercentage > 0 || ud.PlayCount > 0)
	newPlayed := !(ud.Played || isPartiallyWatched)

	if err := a.client.SetPlayed(item.ID, newPlayed); err != nil {
		a.subtitle = fmt.Sprintf("Error: %v", err)
		return
	}

	if isRollupKind(item.Type) {
		// the watch rollup cannot be recomputed client-side
		fresh, err := a.client.Item(item.ID)
		if err != nil {
			a.subtitle = fmt.Sprintf("Error: %v", err)
			return
		}
		*item = *fresh
	} else {
		item.UserData.Played = newPlayed
		item.UserData.PlayedPercentage = 0
		if newPlayed {
			item.UserData.PlayCount = 1
		} else {
			item.UserData.PlayCount = 0
		}
	}

	a.rows[a.cursor].title, a.rows[a.cursor].annotation = formatItem(item, a.chars)
	if newPlayed {
		a.subtitle = "Marked as watched"
	} else {
		a.subtitle = "Marked as unwatched"
	}
}

// ============================================================================
// Library cycling
// ============================================================================

func (a *App) cycleLibrary() {
	if a.screen.isSettings() || a.screen == ScreenDetails {
		return
	}
	if len(a.libraries) == 0 {
		return
	}

	if a.screen != ScreenLibrary {
		a.navStack = nil
		a.screen = ScreenLibrary
		a.seriesID = ""
		a.seriesName = ""
		a.seasonID = ""
		a.collectionID = ""
		a.collectionName = ""
		a.title = appTitle
	}

	a.libraryIndex = (a.libraryIndex + 1) % len(a.libraries)
	a.resetSearch()

	items, err := a.client.LibraryItems(a.currentLibraryID())
	if err != nil {
		a.subtitle = fmt.Sprintf("Error: %v", err)
		return
	}
	a.allItems = items
	a.setRows(a.entityRows(itemPointers(a.allItems)))
	a.subtitle = fmt.Sprintf("%s: %d items", a.libraries[a.libraryIndex].Name, len(a.allItems))
}

// ============================================================================
// Playback
// ============================================================================

func (a *App) play() (tea.Model, tea.Cmd) {
	if a.screen == ScreenDetails {
		return a.playWithTracks()
	}
	if a.screen.isSettings() {
		return a, nil
	}

	payload, ok := a.highlighted().(entityRow)
	if !ok || !isPlayableKind(payload.item.Type) {
		return a, nil
	}
	return a.playItem(payload.item)
}

// playItem emits a launch tuple from the persisted defaults, no track
// overrides
func (a *App) playItem(item *Item) (tea.Model, tea.Cmd) {
	a.result = &Launch{
		StreamURL:    a.client.StreamURL(item.ID),
		DRMConnector: a.cfg.MPV.DRMConnector,
		DRMMode:      a.cfg.MPV.DRMMode,
		AudioDevice:  a.cfg.MPV.AudioDevice,
		AudioSpdif:   a.cfg.MPV.AudioSpdif,
	}
	return a, tea.Quit
}

// playWithTracks emits a launch tuple using the per-playback overrides
// where set, the persisted defaults otherwise. Track indices are 1-based in
// the emitted arguments; the subtitle is explicitly disabled when no track
// was chosen.
func (a *App) playWithTracks() (tea.Model, tea.Cmd) {
	if a.detailItem == nil {
		return a, nil
	}

	launch := &Launch{
		StreamURL:    a.client.StreamURL(a.detailItem.ID),
		DRMConnector: a.cfg.MPV.DRMConnector,
		DRMMode:      a.cfg.MPV.DRMMode,
		AudioDevice:  a.cfg.MPV.AudioDevice,
		AudioSpdif:   a.cfg.MPV.AudioSpdif,
	}
	if a.detailDRMConnector != nil {
		launch.DRMConnector = *a.detailDRMConnector
	}
	if a.detailDRMMode != nil {
		launch.DRMMode = *a.detailDRMMode
	}
	if a.detailAudioDevice != nil {
		launch.AudioDevice = *a.detailAudioDevice
	}

	if a.selVideo != nil {
		launch.TrackArgs = append(launch.TrackArgs, fmt.Sprintf("--vid=%d", *a.selVideo+1))
	}
	if a.selAudio != nil {
		launch.TrackArgs = append(launch.TrackArgs, fmt.Sprintf("--aid=%d", *a.selAudio+1))
	}
	if a.selSubtitle != nil {
		launch.TrackArgs = append(launch.TrackArgs, fmt.Sprintf("--sid=%d", *a.selSubtitle+1))
	} else {
		launch.TrackArgs = append(launch.TrackArgs, "--sid=no")
	}

	a.result = launch
	return a, tea.Quit
}
