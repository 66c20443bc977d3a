package main

import "testing"

func TestWatchMarker(t *testing.T) {
	cs := &charsASCII

	tests := []struct {
		name string
		ud   UserData
		want string
	}{
		{"unwatched", UserData{}, cs.Unwatched},
		{"fully played", UserData{Played: true}, cs.Watched},
		{"played wins over percentage", UserData{Played: true, PlayedPercentage: 42}, cs.Watched},
		{"partial by percentage", UserData{PlayedPercentage: 12.5}, cs.Partial},
		{"partial by play count", UserData{PlayCount: 2}, cs.Partial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := watchMarker(tt.ud, cs); got != tt.want {
				t.Errorf("watchMarker() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRuntime(t *testing.T) {
	tests := []struct {
		ticks int64
		want  string
	}{
		{0, ""},
		{-1, ""},
		{6_000_000_000, "10m"},
		{33_000_000_000, "55m"},
		{36_000_000_000, "1h 0m"},
		{55_200_000_000, "1h 32m"},
		{91_800_000_000, "2h 33m"},
	}

	for _, tt := range tests {
		if got := formatRuntime(tt.ticks); got != tt.want {
			t.Errorf("formatRuntime(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestFormatItemSeries(t *testing.T) {
	item := &Item{
		Type:           ItemSeries,
		Name:           "The Wire",
		ProductionYear: 2002,
		UserData:       UserData{UnplayedItemCount: 13},
	}

	title, annotation := formatItem(item, &charsASCII)

	if title != "S: - The Wire (2002)" {
		t.Errorf("title = %q", title)
	}
	if annotation != "13 unwatched" {
		t.Errorf("annotation = %q", annotation)
	}
}

func TestFormatItemBoxSet(t *testing.T) {
	item := &Item{Type: ItemBoxSet, Name: "Alien Collection", ChildCount: 4}

	title, annotation := formatItem(item, &charsASCII)

	if title != "M: - Alien Collection" {
		t.Errorf("title = %q", title)
	}
	if annotation != "4 items" {
		t.Errorf("annotation = %q, want child count fallback", annotation)
	}

	// unwatched count takes precedence over child count
	item.UserData.UnplayedItemCount = 2
	_, annotation = formatItem(item, &charsASCII)
	if annotation != "2 unwatched" {
		t.Errorf("annotation = %q, want unwatched count", annotation)
	}
}

func TestFormatItemSeason(t *testing.T) {
	item := &Item{Type: ItemSeason, Name: "Season 1", UserData: UserData{Played: true}}

	title, annotation := formatItem(item, &charsASCII)

	if title != "  + Season 1" {
		t.Errorf("title = %q", title)
	}
	if annotation != "" {
		t.Errorf("annotation = %q, want empty", annotation)
	}
}

func TestFormatItemEpisode(t *testing.T) {
	item := &Item{
		Type:         ItemEpisode,
		Name:         "The Target",
		IndexNumber:  1,
		RunTimeTicks: 37_440_000_000,
	}

	title, annotation := formatItem(item, &charsASCII)

	if title != "    - E1: The Target" {
		t.Errorf("title = %q", title)
	}
	if annotation != "1h 2m" {
		t.Errorf("annotation = %q", annotation)
	}
}

func TestFormatItemEpisodeMissingIndex(t *testing.T) {
	item := &Item{Type: ItemEpisode, Name: "Special"}

	title, _ := formatItem(item, &charsASCII)

	if title != "    - E?: Special" {
		t.Errorf("title = %q", title)
	}
}

func TestFormatItemMovie(t *testing.T) {
	item := &Item{
		Type:           ItemMovie,
		Name:           "Heat",
		ProductionYear: 1995,
		RunTimeTicks:   102_000_000_000,
		UserData:       UserData{PlayedPercentage: 40},
	}

	title, annotation := formatItem(item, &charsASCII)

	if title != "M: ~ Heat (1995)" {
		t.Errorf("title = %q", title)
	}
	if annotation != "2h 50m" {
		t.Errorf("annotation = %q", annotation)
	}
}
