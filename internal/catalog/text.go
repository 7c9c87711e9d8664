package catalog

import (
	"unicode/utf8"

	"skullfire.dev/internal/models"
)

const (
	// FallbackDescription is shown when a rich-text description has no usable text
	FallbackDescription = "An innovative project showcasing cutting-edge technology and creative problem-solving."

	// DefaultTruncateLength is the card summary length in characters
	DefaultTruncateLength = 150

	Ellipsis = "..."
)

// ResolveDescription returns display text for a description. Plain text is
// returned as is; a rich document yields the text of its first block's first
// child, or FallbackDescription when that is missing.
func ResolveDescription(d models.Description) string {
	if d.Kind == models.PlainText {
		return d.Text
	}
	if len(d.Blocks) > 0 && len(d.Blocks[0].Children) > 0 {
		if text := d.Blocks[0].Children[0].Text; text != "" {
			return text
		}
	}
	return FallbackDescription
}

// Truncate shortens text to maxLen characters followed by Ellipsis. Length is
// counted in runes so multi-byte characters are never split. A non-positive
// maxLen means DefaultTruncateLength.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultTruncateLength
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	n := 0
	for i := range text {
		if n == maxLen {
			return text[:i] + Ellipsis
		}
		n++
	}
	return text
}
