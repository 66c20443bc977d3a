package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	structuralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	annotationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// chromeLines is the number of non-list lines around the row list: title,
// tabs, search, blank, status and help.
const chromeLines = 6

func (a *App) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(a.title))
	content.WriteString("\n")

	if tabs := a.renderLibraryTabs(); tabs != "" {
		content.WriteString(tabs)
		content.WriteString("\n")
	}

	if a.screen == ScreenLibrary {
		content.WriteString(a.search.View())
		content.WriteString("\n")
	}

	content.WriteString(a.renderList())
	content.WriteString("\n")

	content.WriteString(subtitleStyle.Render(a.subtitle))
	content.WriteString("\n")
	content.WriteString(a.renderHelpText())

	return content.String()
}

func (a *App) renderLibraryTabs() string {
	if len(a.libraries) == 0 || !a.screen.isBrowse() {
		return ""
	}

	var tabs []string
	for i, lib := range a.libraries {
		if i == a.libraryIndex {
			tabs = append(tabs, tabActiveStyle.Render(lib.Name))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(lib.Name))
		}
	}
	return strings.Join(tabs, " ")
}

// listHeight is the number of rows that fit in the terminal
func (a *App) listHeight() int {
	height := a.height - chromeLines
	if height < 1 {
		height = 10
	}
	return height
}

// listWindow returns the visible slice bounds, keeping the cursor in view
func (a *App) listWindow() (int, int) {
	height := a.listHeight()
	if len(a.rows) <= height {
		return 0, len(a.rows)
	}

	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := start + height
	if end > len(a.rows) {
		end = len(a.rows)
		start = end - height
	}
	return start, end
}

func (a *App) renderList() string {
	if len(a.rows) == 0 {
		return "No items"
	}

	var content strings.Builder
	start, end := a.listWindow()

	for i := start; i < end; i++ {
		row := a.rows[i]

		prefix := "  "
		style := lipgloss.NewStyle()
		if !row.payload.selectable() {
			style = structuralStyle
		}
		if i == a.cursor {
			prefix = "> "
			style = selectedStyle
		}

		line := prefix + row.title
		if row.annotation != "" {
			padding := a.width - lipgloss.Width(line) - lipgloss.Width(row.annotation) - 2
			if padding < 1 {
				padding = 1
			}
			content.WriteString(style.Render(line))
			content.WriteString(strings.Repeat(" ", padding))
			content.WriteString(annotationStyle.Render(row.annotation))
		} else {
			content.WriteString(style.Render(line))
		}
		content.WriteString("\n")
	}

	return strings.TrimRight(content.String(), "\n")
}

func (a *App) renderHelpText() string {
	var parts []string

	switch {
	case a.screen == ScreenDetails:
		parts = []string{Keys.Navigate, Keys.Select, Keys.Play, Keys.Back, Keys.Quit}
	case a.screen.isSettings():
		parts = []string{Keys.Navigate, Keys.Select, Keys.Back, Keys.Quit}
	case a.screen == ScreenLibrary:
		parts = []string{Keys.Navigate, Keys.Select, Keys.Search, Keys.Watched, Keys.Details, Keys.Play, Keys.Library, Keys.Settings, Keys.Quit}
	default:
		parts = []string{Keys.Navigate, Keys.Select, Keys.Back, Keys.Watched, Keys.Details, Keys.Play, Keys.Settings, Keys.Quit}
	}

	// the console font cannot render box-drawing characters
	dash := "─"
	if a.chars == &charsASCII {
		dash = "-"
	}
	return helpStyle.Render(fmt.Sprintf("%[1]s| %s |%[1]s", dash, strings.Join(parts, fmt.Sprintf(" |%s| ", dash))))
}
