package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"tracknote/internal/config"
	"tracknote/internal/lyrics"
	"tracknote/internal/model"
	"tracknote/internal/nowplaying"
	"tracknote/internal/search"
	"tracknote/internal/storage"
	"tracknote/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "browse":
			runBrowse()
			return
		case "search":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: tracknote search <query>\n")
				os.Exit(1)
			}
			runSearch(strings.Join(os.Args[2:], " "))
			return
		case "recent":
			runRecent()
			return
		case "count":
			runCount()
			return
		case "--refresh", "-r":
			runNowPlaying(true)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
			fmt.Fprintf(os.Stderr, "Run 'tracknote help' for usage.\n")
			os.Exit(1)
		}
	}

	// No args - show the currently playing track
	runNowPlaying(false)
}

func printHelp() {
	help := `tracknote - cache and browse what you're listening to

Usage:
  tracknote             Show the currently playing track (cached or fetched)
  tracknote -r          Same, but re-fetch lyrics even when cached
  tracknote browse      Open the interactive browser over the cache
  tracknote search <q>  Fuzzy-search cached tracks
  tracknote recent      Show the ten most recently cached tracks
  tracknote count       Show how many tracks are cached
  tracknote help        Show this help

Browser Keybindings:
  j/k         Move down/up (scroll lyrics in detail view)
  h/l         Previous/next song (detail view)
  Enter       Open details / back to list
  Esc         Back to list / leave search
  /           Live search
  y           Copy track to clipboard
  q           Quit

Configuration:
  ~/.config/tracknote/config.toml
Data Storage:
  ~/.local/share/tracknote/tracks.db
`
	fmt.Print(help)
}

// openStore loads the configuration and opens the track cache.
func openStore() (*config.Config, *storage.Store) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening track cache: %v\n", err)
		os.Exit(1)
	}

	return cfg, store
}

// runNowPlaying reads the current track from the media player, serves it
// from the cache when possible, and otherwise fetches lyrics and caches it.
func runNowPlaying(refresh bool) {
	cfg, store := openStore()
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	track, err := nowplaying.Current(ctx, cfg.Player.BusName)
	if err != nil {
		switch {
		case errors.Is(err, nowplaying.ErrNoPlayer):
			fmt.Fprintf(os.Stderr, "No media player found\n")
		case errors.Is(err, nowplaying.ErrNothingPlaying):
			fmt.Fprintf(os.Stderr, "Nothing is playing\n")
		default:
			fmt.Fprintf(os.Stderr, "Error reading player: %v\n", err)
		}
		os.Exit(1)
	}

	if !refresh {
		cached, err := store.Get(track.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading track cache: %v\n", err)
			os.Exit(1)
		}
		if cached != nil {
			printTrack(*cached)
			return
		}
	}

	if cfg.LyricsEnabled() {
		result, err := lyrics.NewClient().Get(ctx, track.Artist, track.Title,
			time.Duration(track.DurationMS)*time.Millisecond)
		switch {
		case errors.Is(err, lyrics.ErrNotFound):
			fmt.Fprintf(os.Stderr, "No lyrics found for %s\n", track.Summary())
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error fetching lyrics: %v\n", err)
		case result.HasLyrics():
			cleaned := lyrics.Clean(result.PlainLyrics)
			track.Lyrics = &cleaned
		}
	}

	if err := store.Put(*track); err != nil {
		fmt.Fprintf(os.Stderr, "Error caching track: %v\n", err)
		os.Exit(1)
	}

	stored, err := store.Get(track.ID)
	if err != nil || stored == nil {
		printTrack(*track)
		return
	}
	printTrack(*stored)
}

// runBrowse runs the interactive browser.
func runBrowse() {
	_, store := openStore()
	defer store.Close()

	app, err := tui.NewApp(tui.AppParams{Store: store})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}

// runSearch prints cached tracks ranked against the query.
func runSearch(query string) {
	cfg, store := openStore()
	defer store.Close()

	tracks, err := store.All()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzyRank(tracks, query)
	if len(results) == 0 {
		fmt.Printf("No cached tracks found for '%s'\n", query)
		return
	}

	// Mark the currently playing track when we can tell
	playingID := ""
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if current, err := nowplaying.Current(ctx, cfg.Player.BusName); err == nil {
		playingID = current.ID
	}

	for _, r := range results {
		marker := "  "
		if r.Track.ID == playingID {
			marker = "> "
		}
		fmt.Printf("%s%s\n", marker, r.Track.Summary())
	}
}

// runRecent prints the ten most recently cached tracks.
func runRecent() {
	_, store := openStore()
	defer store.Close()

	tracks, err := store.Recent(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracks: %v\n", err)
		os.Exit(1)
	}

	if len(tracks) == 0 {
		fmt.Println("No tracks cached yet.")
		return
	}

	for _, t := range tracks {
		fmt.Printf("%-50s %s\n", t.Summary(), humanize.Time(t.CachedAt))
	}
}

// runCount prints the cache size with a little encouragement.
func runCount() {
	_, store := openStore()
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting tracks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s cached\n", pluralTracks(n))
	fmt.Println(flavorLine(n))
}

func pluralTracks(n int) string {
	if n == 1 {
		return "1 track"
	}
	return strconv.Itoa(n) + " tracks"
}

// flavorLine picks a remark for the cache size.
func flavorLine(n int) string {
	switch {
	case n == 0:
		return "Nothing yet. Go play something!"
	case n < 10:
		return "Just getting started."
	case n < 100:
		return "A respectable collection."
	case n < 500:
		return "Quite the library you have there."
	default:
		return "An archive for the ages."
	}
}

// printTrack writes the full track report to stdout.
func printTrack(t model.Track) {
	fmt.Printf("Track: %s\n", t.Title)
	fmt.Printf("Artist: %s\n", t.Artist)
	fmt.Printf("Album: %s\n", t.Album)
	if t.ReleaseDate != "" {
		fmt.Printf("Release Date: %s\n", t.ReleaseDate)
	}
	fmt.Printf("Duration: %s\n", t.FormatDuration())
	fmt.Printf("Popularity: %d/100\n", t.Popularity)
	if t.Genres != "" {
		fmt.Printf("Genres: %s\n", t.Genres)
	}
	if t.Producers != "" {
		fmt.Printf("Producers: %s\n", t.Producers)
	}
	if t.Writers != "" {
		fmt.Printf("Writers: %s\n", t.Writers)
	}
	if !t.CachedAt.IsZero() {
		fmt.Printf("Cached: %s\n", humanize.Time(t.CachedAt))
	}
	if t.HasLyrics() {
		fmt.Printf("\n%s\n", *t.Lyrics)
	}
}
