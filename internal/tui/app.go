// Package tui implements the interactive browser over the track cache.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tracknote/internal/model"
)

// TrackStore is the read contract the browser needs from the cache.
// Search("") must behave exactly like All().
type TrackStore interface {
	All() ([]model.Track, error)
	Search(query string) ([]model.Track, error)
}

// inputMode says whether keystrokes drive navigation or text entry.
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditing
)

// viewMode says whether the content pane shows the list or one track.
type viewMode int

const (
	viewList viewMode = iota
	viewDetail
)

// App is the bubbletea model for the track browser. Update is the only
// place its state mutates; View reads it without side effects.
type App struct {
	store  TrackStore
	keys   KeyMap
	styles Styles

	results []model.Track
	cursor  int // -1 iff results is empty, otherwise a valid index

	searchInput textinput.Model
	input       inputMode
	view        viewMode
	scroll      int // detail-view lyrics offset, never negative

	// Last live-search failure; prior results stay on screen.
	searchErr error

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store  TrackStore
	Keys   *KeyMap // optional, uses default if nil
	Styles *Styles // optional, uses default if nil
}

// NewApp loads the full track list and builds the browser. A storage
// failure here is fatal: the caller must not start the event loop.
func NewApp(params AppParams) (App, error) {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	tracks, err := params.Store.All()
	if err != nil {
		return App{}, err
	}

	input := textinput.New()
	input.Placeholder = "title, artist or album..."
	input.CharLimit = 100
	input.Prompt = "/ "

	app := App{
		store:       params.Store,
		keys:        keys,
		styles:      styles,
		results:     tracks,
		cursor:      -1,
		searchInput: input,
		width:       80,
		height:      24,
	}
	if len(tracks) > 0 {
		app.cursor = 0
	}

	return app, nil
}

// WithDimensions returns a copy with fixed window dimensions (for tests).
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Cursor returns the selection index, -1 when the result list is empty.
func (a App) Cursor() int {
	return a.cursor
}

// Results returns the current result list.
func (a App) Results() []model.Track {
	return a.results
}

// Selected returns the selected track, or nil when there is none.
func (a App) Selected() *model.Track {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return nil
	}
	return &a.results[a.cursor]
}

// Query returns the current search query.
func (a App) Query() string {
	return a.searchInput.Value()
}

// ScrollOffset returns the detail-view lyrics scroll offset.
func (a App) ScrollOffset() int {
	return a.scroll
}

// Editing returns true while keystrokes go into the search query.
func (a App) Editing() bool {
	return a.input == modeEditing
}

// ShowingDetail returns true when the content pane shows one track.
func (a App) ShowingDetail() bool {
	return a.view == viewDetail
}

// SearchErr returns the last live-search failure, nil after a success.
func (a App) SearchErr() error {
	return a.searchErr
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It applies one state transition per event;
// everything inside a transition is synchronous, so the selection and
// scroll invariants hold between any two events.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.input == modeEditing {
			return a.updateEditing(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

// updateNormal handles keys while navigation is active.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Search):
		a.input = modeEditing
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Down):
		if a.view == viewDetail {
			a.scroll++
		} else {
			a.selectNext()
		}

	case key.Matches(msg, a.keys.Up):
		if a.view == viewDetail {
			if a.scroll > 0 {
				a.scroll--
			}
		} else {
			a.selectPrevious()
		}

	case key.Matches(msg, a.keys.Right):
		if a.view == viewDetail {
			a.selectNext()
			a.scroll = 0
		}

	case key.Matches(msg, a.keys.Left):
		if a.view == viewDetail {
			a.selectPrevious()
			a.scroll = 0
		}

	case key.Matches(msg, a.keys.Confirm):
		if a.view == viewDetail {
			a.view = viewList
			a.scroll = 0
		} else if a.Selected() != nil {
			a.view = viewDetail
			a.scroll = 0
		}

	case key.Matches(msg, a.keys.Cancel):
		if a.view == viewDetail {
			a.view = viewList
			a.scroll = 0
		}

	case key.Matches(msg, a.keys.Yank):
		a.yank()
	}

	return a, nil
}

// updateEditing handles keys while they go into the search query. Every
// change to the query re-runs the search immediately.
func (a App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEscape:
		// Leave editing without touching results
		a.input = modeNormal
		a.searchInput.Blur()
		return a, nil
	case tea.KeyCtrlC:
		return a, tea.Quit
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)

	if a.searchInput.Value() != before {
		a.runSearch()
	}

	return a, cmd
}

// runSearch replaces the result list from the store. On failure the prior
// results and selection stay untouched, so the cursor invariant survives
// storage faults mid-session.
func (a *App) runSearch() {
	tracks, err := a.store.Search(a.searchInput.Value())
	if err != nil {
		a.searchErr = err
		return
	}

	a.searchErr = nil
	a.results = tracks
	a.scroll = 0
	if len(tracks) > 0 {
		a.cursor = 0
	} else {
		a.cursor = -1
	}
}

// selectNext advances the selection, wrapping from the end to 0.
func (a *App) selectNext() {
	if len(a.results) == 0 {
		return
	}
	a.cursor++
	if a.cursor >= len(a.results) {
		a.cursor = 0
	}
}

// selectPrevious moves the selection back, wrapping from 0 to the end.
func (a *App) selectPrevious() {
	if len(a.results) == 0 {
		return
	}
	a.cursor--
	if a.cursor < 0 {
		a.cursor = len(a.results) - 1
	}
}

// yank copies the selection to the system clipboard: the one-line summary
// in list view, the full report (with lyrics) in detail view. Clipboard
// failure is not worth interrupting the session over.
func (a *App) yank() {
	track := a.Selected()
	if track == nil {
		return
	}

	text := track.Summary()
	if a.view == viewDetail {
		text = detailText(*track)
	}
	_ = clipboard.WriteAll(text)
}

// detailText renders the plain-text report used for clipboard copies.
func detailText(t model.Track) string {
	var b strings.Builder
	b.WriteString("Track: " + t.Title + "\n")
	b.WriteString("Artist: " + t.Artist + "\n")
	b.WriteString("Album: " + t.Album + "\n")
	if t.ReleaseDate != "" {
		b.WriteString("Release Date: " + t.ReleaseDate + "\n")
	}
	b.WriteString("Duration: " + t.FormatDuration() + "\n")
	if t.Genres != "" {
		b.WriteString("Genres: " + t.Genres + "\n")
	}
	if t.HasLyrics() {
		b.WriteString("\n" + *t.Lyrics + "\n")
	}
	return b.String()
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
