package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout renders the long-form date used by day-section headers,
	// e.g. "Monday, Jan 1, 2024".
	DateLayout = "Monday, Jan 2, 2006"
	// TimeLayout renders the time-of-day used by entry headers, e.g. "3:00:00 PM".
	TimeLayout = "3:04:05 PM"

	DateHeaderPrefix  = "### "
	EntryHeaderPrefix = "#### "
)

// Clock returns the current time. Sessions take one so tests can pin dates.
type Clock func() time.Time

// FormatDate renders t as a day-section date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t as an entry time.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// LastDate scans content for the last line that starts with "### " and
// returns the text after the prefix. ok is false when no day-section exists.
func LastDate(content string) (date string, ok bool) {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, DateHeaderPrefix) {
			date, ok = strings.TrimSuffix(line[len(DateHeaderPrefix):], "\r"), true
		}
	}
	return date, ok
}

// FormatEntry builds the block appended to a note for text written at now.
// The day-section header is emitted only when the note's last date differs
// from the current one.
func FormatEntry(lastDate string, hasLast bool, now time.Time, text string) string {
	var b strings.Builder
	current := FormatDate(now)
	if !hasLast || lastDate != current {
		b.WriteString(DateHeaderPrefix + current + "\n")
	}
	fmt.Fprintf(&b, "  \n%s%s:  \n%s\n", EntryHeaderPrefix, FormatTime(now), text)
	return b.String()
}

// FormatImageRef builds the markdown appended to a note after an image has
// been copied into its asset directory.
func FormatImageRef(original string, note NoteRef, assetName string) string {
	return fmt.Sprintf("\n\n![%s](./%s/%s)", original, note.AssetDirName(), assetName)
}
