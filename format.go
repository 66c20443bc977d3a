package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Charset is the process-scoped display glyph table, resolved once at
// startup and passed by reference into the formatter and row builders.
type Charset struct {
	TV         string
	Movie      string
	Watched    string
	Partial    string
	Unwatched  string
	Selected   string
	Unselected string
	Play       string
	Separator  string
	Settings   string
	Clear      string
	Connector  string
	Display    string
	Audio      string
	Error      string
	Info       string
}

var charsUnicode = Charset{
	TV:         "📺",
	Movie:      "🎬",
	Watched:    "✓",
	Partial:    "◐",
	Unwatched:  "○",
	Selected:   "●",
	Unselected: "○",
	Play:       "▶",
	Separator:  strings.Repeat("─", 40),
	Settings:   "⚙️",
	Clear:      "🗑️",
	Connector:  "🔌",
	Display:    "📺",
	Audio:      "🔊",
	Error:      "❌",
	Info:       "ℹ️",
}

var charsASCII = Charset{
	TV:         "S:",
	Movie:      "M:",
	Watched:    "+",
	Partial:    "~",
	Unwatched:  "-",
	Selected:   "*",
	Unselected: "o",
	Play:       ">",
	Separator:  strings.Repeat("-", 40),
	Settings:   "==",
	Clear:      "xx",
	Connector:  ">>",
	Display:    "D:",
	Audio:      "A:",
	Error:      "!!",
	Info:       "ii",
}

var consoleTTYPattern = regexp.MustCompile(`^/dev/tty[0-9]+$`)

// isConsoleTTY reports whether stdout is a Linux virtual console rather
// than a terminal emulator. The console font cannot render the Unicode
// glyph set.
func isConsoleTTY() bool {
	if os.Getenv("TERM") == "linux" {
		return true
	}
	if name, err := os.Readlink("/proc/self/fd/1"); err == nil {
		return consoleTTYPattern.MatchString(name)
	}
	return false
}

// charsetFor picks the glyph table for the detected terminal
func charsetFor(ttyMode bool) *Charset {
	if ttyMode {
		return &charsASCII
	}
	return &charsUnicode
}

// formatRuntime converts Jellyfin ticks (100ns intervals) to "1h 32m"
// or "45m"; zero or absent runtime yields an empty string.
func formatRuntime(ticks int64) string {
	if ticks <= 0 {
		return ""
	}
	totalSeconds := ticks / 10_000_000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// watchMarker returns the glyph describing an item's watch state: fully
// played, partially played, or unwatched.
func watchMarker(ud UserData, cs *Charset) string {
	if ud.Played {
		return cs.Watched
	}
	if ud.PlayedPercentage > 0 || ud.PlayCount > 0 {
		return cs.Partial
	}
	return cs.Unwatched
}

// formatItem turns one catalog entity into its (title, annotation) pair
func formatItem(item *Item, cs *Charset) (string, string) {
	played := watchMarker(item.UserData, cs)
	name := item.Name
	if name == "" {
		name = "Unknown"
	}

	switch item.Type {
	case ItemSeries:
		year := ""
		if item.ProductionYear > 0 {
			year = fmt.Sprintf(" (%d)", item.ProductionYear)
		}
		annotation := ""
		if item.UserData.UnplayedItemCount > 0 {
			annotation = fmt.Sprintf("%d unwatched", item.UserData.UnplayedItemCount)
		}
		return fmt.Sprintf("%s %s %s%s", cs.TV, played, name, year), annotation

	case ItemBoxSet:
		annotation := ""
		if item.UserData.UnplayedItemCount > 0 {
			annotation = fmt.Sprintf("%d unwatched", item.UserData.UnplayedItemCount)
		} else if item.ChildCount > 0 {
			annotation = fmt.Sprintf("%d items", item.ChildCount)
		}
		return fmt.Sprintf("%s %s %s", cs.Movie, played, name), annotation

	case ItemSeason:
		annotation := ""
		if item.UserData.UnplayedItemCount > 0 {
			annotation = fmt.Sprintf("%d unwatched", item.UserData.UnplayedItemCount)
		}
		return fmt.Sprintf("  %s %s", played, name), annotation

	case ItemEpisode:
		episodeNum := "?"
		if item.IndexNumber > 0 {
			episodeNum = fmt.Sprintf("%d", item.IndexNumber)
		}
		return fmt.Sprintf("    %s E%s: %s", played, episodeNum, name), formatRuntime(item.RunTimeTicks)

	default: // Movie
		year := ""
		if item.ProductionYear > 0 {
			year = fmt.Sprintf(" (%d)", item.ProductionYear)
		}
		return fmt.Sprintf("%s %s %s%s", cs.Movie, played, name, year), formatRuntime(item.RunTimeTicks)
	}
}
