// Package display renders catalog data for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPopulation formats n with thousands separators, e.g. 10,000.
func FormatPopulation(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatCoordinates formats a latitude/longitude pair to six decimals.
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}

// Pluralize returns "1 time", "2 times" and so on.
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Wrap breaks text into lines no wider than width terminal columns.
// Text that already fits is returned as a single line. A word wider than
// width is placed on its own line rather than split.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
