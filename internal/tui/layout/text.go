// Package layout provides pure text and viewport helpers for the browser.
package layout

import (
	"regexp"
	"unicode/utf8"
)

const ellipsis = "..."

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	textLen := utf8.RuneCountInString(text)
	if textLen <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if maxWidth <= ellipsisLen {
		// Not enough room for any text + ellipsis
		runes := []rune(ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + ellipsis, true
}

// ViewportOffset calculates the scroll offset needed to keep the selected
// item visible within the viewport, roughly centered.
func ViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight || viewportHeight <= 0 {
		return 0
	}

	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// ClampWindow slices the index range [offset, offset+height) against a
// content length, so rendering never reads out of bounds no matter how far
// the offset points past the end.
func ClampWindow(offset, height, total int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	start = offset
	if start > total {
		start = total
	}
	end = start + height
	if height <= 0 || end > total {
		end = total
	}
	return start, end
}
