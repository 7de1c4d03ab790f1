package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// RepeatMarker replaces a value identical to the previous distinct value in its column.
	RepeatMarker = `"`
	// ContinuationMarker replaces a repeat that is followed by another repeat.
	ContinuationMarker = "│"
)

// Cell widths ignore the locale so ambiguous runes such as "°" and "│"
// always count as one column.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Temperature and humidity are always shown in full.
var collapsible = [fieldCount]bool{
	true,  // Time
	true,  // Desc
	false, // Temp
	false, // Humidity
	true,  // Wind
	true,  // Pop
}

// FormatHourly collapses repeated values into markers and aligns the columns.
// The input slice is left untouched.
func FormatHourly(rows []Row) []Row {
	return PadColumns(markRuns(collapseRepeats(rows)))
}

// collapseRepeats replaces every collapsible value equal to the last distinct
// value seen in its column with RepeatMarker. The first row is never changed.
func collapseRepeats(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	if len(out) == 0 {
		return out
	}

	last := out[0]
	for i := 1; i < len(out); i++ {
		cur, seen := out[i].fields(), last.fields()
		for k := range cur {
			if !collapsible[k] {
				continue
			}
			if *cur[k] == *seen[k] {
				*cur[k] = RepeatMarker
			} else {
				*seen[k] = *cur[k]
			}
		}
	}
	return out
}

// markRuns turns every repeat that is followed by another repeat into a
// ContinuationMarker, so only the last repeat of a run keeps RepeatMarker.
func markRuns(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	for i := 0; i+1 < len(out); i++ {
		cur, next := out[i].fields(), out[i+1].fields()
		for k := range cur {
			if *cur[k] == RepeatMarker && *next[k] == RepeatMarker {
				*cur[k] = ContinuationMarker
			}
		}
	}
	return out
}

// PadColumns centers every value in a column to the widest value of that column.
func PadColumns(rows []Row) []Row {
	out := append([]Row(nil), rows...)

	var widths [fieldCount]int
	for i := range out {
		for k, v := range out[i].fields() {
			widths[k] = max(widths[k], cellWidth.StringWidth(*v))
		}
	}

	for i := range out {
		for k, v := range out[i].fields() {
			*v = center(*v, widths[k])
		}
	}
	return out
}

// center pads s with spaces to width. When the padding is odd the extra space
// goes left for odd widths and right for even widths.
func center(s string, width int) string {
	margin := width - cellWidth.StringWidth(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// HourlyLine renders one hourly row.
func HourlyLine(r Row) string {
	return fmt.Sprintf("  %s | %s | %s| %s | %s | %s", r.Time, r.Desc, r.Temp, r.Humidity, r.Wind, r.Pop)
}

// DailyLine renders one daily row.
func DailyLine(r Row) string {
	return fmt.Sprintf("%s: %s | %s | %s | %s | %s", r.Time, r.Desc, r.Temp, r.Humidity, r.Wind, r.Pop)
}
