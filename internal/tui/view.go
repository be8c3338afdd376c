package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tracknote/internal/model"
	"tracknote/internal/tui/layout"
)

// renderView lays out the three panes: search on top, content in the
// middle, help at the bottom.
func (a App) renderView() string {
	search := a.renderSearchPane()
	help := a.renderHelpPane()

	contentHeight := a.height - lipgloss.Height(search) - lipgloss.Height(help)
	if contentHeight < 3 {
		contentHeight = 3
	}

	var content string
	if a.view == viewDetail {
		content = a.renderDetailPane(contentHeight)
	} else {
		content = a.renderListPane(contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, search, content, help)
}

// paneWidth is the width passed to lipgloss (terminal minus border cells).
func (a App) paneWidth() int {
	w := a.width - 2
	if w < 10 {
		w = 10
	}
	return w
}

// innerWidth is the room left for text inside a pane.
func (a App) innerWidth() int {
	return a.paneWidth() - 2
}

func (a App) renderSearchPane() string {
	var line string
	switch {
	case a.input == modeEditing:
		line = a.searchInput.View()
	case a.Query() != "":
		line = a.styles.SearchActive.Render("Filter: "+a.Query()) +
			a.styles.Empty.Render("  (/ to edit)")
	default:
		line = a.styles.Empty.Render("Press ") +
			a.styles.Title.Render("/") +
			a.styles.Empty.Render(" to search")
	}

	if a.searchErr != nil {
		line += a.styles.Warning.Render("  search failed, showing previous results")
	}

	return a.styles.Pane.Width(a.paneWidth()).Render(line)
}

func (a App) renderListPane(height int) string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(fmt.Sprintf("Tracks (%d)", len(a.results))))
	b.WriteString("\n")

	visible := height - 3 // border + header
	if visible < 1 {
		visible = 1
	}

	if len(a.results) == 0 {
		if a.Query() != "" {
			b.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			b.WriteString(a.styles.Empty.Render("(no cached tracks)"))
		}
	} else {
		offset := layout.ViewportOffset(a.cursor, len(a.results), visible)
		start, end := layout.ClampWindow(offset, visible, len(a.results))
		clip := lipgloss.NewStyle().MaxWidth(a.innerWidth())

		for i := start; i < end; i++ {
			track := a.results[i]
			if i == a.cursor {
				line := "> " + track.Title + " by " + track.Artist
				b.WriteString(clip.Render(a.styles.ItemSelected.Render(line)))
			} else {
				line := "  " + a.styles.TrackTitle.Render(track.Title) +
					a.styles.Item.Render(" by ") +
					a.styles.Artist.Render(track.Artist)
				b.WriteString(clip.Render(line))
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	return a.styles.Pane.
		Width(a.paneWidth()).
		Height(height - 2).
		Render(b.String())
}

func (a App) renderDetailPane(height int) string {
	track := a.Selected()
	if track == nil {
		content := a.styles.Title.Render("Track Details") + "\n" +
			a.styles.Empty.Render("No track selected")
		return a.styles.Pane.
			Width(a.paneWidth()).
			Height(height - 2).
			Render(content)
	}

	lines := a.detailLines(*track)

	visible := height - 3 // border + header
	if visible < 1 {
		visible = 1
	}

	// Scrolling past the end just shows blank space
	start, end := layout.ClampWindow(a.scroll, visible, len(lines))
	window := lines[start:end]

	content := a.styles.Title.Render("Track Details") + "\n" + strings.Join(window, "\n")
	return a.styles.Pane.
		Width(a.paneWidth()).
		Height(height - 2).
		Render(content)
}

// detailLines builds the scrollable body of the detail view, one entry per
// terminal row. Empty optional fields are omitted.
func (a App) detailLines(t model.Track) []string {
	field := func(label, value string) string {
		return a.styles.Label.Render(label+": ") + a.styles.Value.Render(value)
	}

	lines := []string{
		field("Track", t.Title),
		field("Artist", t.Artist),
		field("Album", t.Album),
	}

	if t.ReleaseDate != "" {
		lines = append(lines, field("Release Date", t.ReleaseDate))
	}

	lines = append(lines,
		field("Duration", t.FormatDuration()),
		field("Popularity", fmt.Sprintf("%d/100", t.Popularity)),
	)

	if t.Genres != "" {
		lines = append(lines, field("Genres", t.Genres))
	}
	if t.Producers != "" {
		lines = append(lines, field("Producers", t.Producers))
	}
	if t.Writers != "" {
		lines = append(lines, field("Writers", t.Writers))
	}
	if !t.CachedAt.IsZero() {
		lines = append(lines, field("Cached", humanize.Time(t.CachedAt)))
	}

	if t.HasLyrics() {
		lines = append(lines, "", a.styles.Label.Render("Lyrics:"), "")
		clip := lipgloss.NewStyle().MaxWidth(a.innerWidth())
		for _, l := range t.LyricLines() {
			lines = append(lines, clip.Render(a.styles.Lyric.Render(l)))
		}
	}

	return lines
}

func (a App) renderHelpPane() string {
	var text string
	switch {
	case a.input == modeEditing:
		text = "type to search | enter: done | esc: cancel"
	case a.view == viewDetail:
		text = "j/k: scroll | h/l: prev/next song | y: copy | enter/esc: back | q: quit"
	default:
		text = "j/k: navigate | enter: details | /: search | y: copy | q: quit"
	}

	return a.styles.Pane.
		Width(a.paneWidth()).
		Render(a.styles.Help.Render(text))
}
