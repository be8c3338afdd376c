package layout_test

import (
	"testing"

	"tracknote/internal/tui/layout"
)

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1;36mSong A\x1b[0m by \x1b[32mArtist X\x1b[0m"
	if got := layout.StripANSI(styled); got != "Song A by Artist X" {
		t.Errorf("unexpected strip result: %q", got)
	}
}

func TestVisibleLength(t *testing.T) {
	if got := layout.VisibleLength("\x1b[1mabc\x1b[0m"); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "short", 10, "short", false},
		{"exact", "exact", 5, "exact", false},
		{"truncated", "a longer string", 10, "a longe...", true},
		{"tiny width", "text", 2, "..", true},
		{"zero width", "text", 0, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := layout.TruncateText(tc.text, tc.maxWidth)
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if truncated != tc.truncated {
				t.Errorf("expected truncated=%v, got %v", tc.truncated, truncated)
			}
		})
	}
}

func TestViewportOffset(t *testing.T) {
	// Everything fits: no offset
	if got := layout.ViewportOffset(5, 8, 10); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	// Selection near top: clamped to 0
	if got := layout.ViewportOffset(0, 100, 10); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	// Selection in the middle: roughly centered
	if got := layout.ViewportOffset(50, 100, 10); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}

	// Selection near bottom: clamped to max offset
	if got := layout.ViewportOffset(99, 100, 10); got != 90 {
		t.Errorf("expected 90, got %d", got)
	}
}

func TestClampWindow(t *testing.T) {
	// Normal window
	start, end := layout.ClampWindow(2, 3, 10)
	if start != 2 || end != 5 {
		t.Errorf("expected [2,5), got [%d,%d)", start, end)
	}

	// Offset past the end is harmless
	start, end = layout.ClampWindow(60, 5, 50)
	if start != 50 || end != 50 {
		t.Errorf("expected empty window [50,50), got [%d,%d)", start, end)
	}

	// Window bigger than content
	start, end = layout.ClampWindow(0, 100, 4)
	if start != 0 || end != 4 {
		t.Errorf("expected [0,4), got [%d,%d)", start, end)
	}

	// Negative offset treated as zero
	start, end = layout.ClampWindow(-3, 2, 4)
	if start != 0 || end != 2 {
		t.Errorf("expected [0,2), got [%d,%d)", start, end)
	}
}
