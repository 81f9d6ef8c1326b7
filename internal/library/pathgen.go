// This file derives link locations: it turns a validated metadata record
// into a filesystem-safe target directory and file name. The derived path
// is a pure function of the record, so re-runs always land on the same
// link location.

package library

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"comiclinks/internal/models"
)

var (
	segmentSeparators = regexp.MustCompile(`[\\/:;]`)
	segmentDropped    = regexp.MustCompile(`[?,']`)
	segmentSpaceRuns  = regexp.MustCompile(`\s{2,}`)
)

// CleanSegment makes a metadata field safe to use as a single path
// segment. Path separators and drive punctuation become " - ", a few
// characters that only cause grief in file names are dropped, and runs
// of whitespace collapse into a single space.
func CleanSegment(s string) string {
	s = segmentSeparators.ReplaceAllString(s, " - ")
	s = segmentDropped.ReplaceAllString(s, "")
	s = segmentSpaceRuns.ReplaceAllString(s, " ")
	return s
}

// CleanNumber normalizes an issue number for use in a file name. The
// half glyph becomes ".5" (including the mis-encoded two-byte form found
// in the wild), a trailing "A" or "B" variant marker becomes ".1" or
// ".2", and "/" becomes "-".
func CleanNumber(n string) string {
	n = strings.ReplaceAll(n, "Â½", ".5")
	n = strings.ReplaceAll(n, "½", ".5")
	switch {
	case strings.HasSuffix(n, "A"):
		n = strings.TrimSuffix(n, "A") + ".1"
	case strings.HasSuffix(n, "B"):
		n = strings.TrimSuffix(n, "B") + ".2"
	}
	return strings.ReplaceAll(n, "/", "-")
}

// LinkDir returns the directory a comic's link lives in:
// <targetRoot>/<Publisher>/<Series>/V<Volume>. All three metadata
// segments are cleaned, so a stray "/" in any of them cannot escape its
// level of the tree.
func LinkDir(targetRoot string, info *models.ComicInfo) string {
	return filepath.Join(
		targetRoot,
		CleanSegment(info.Publisher),
		CleanSegment(info.Series),
		"V"+CleanSegment(info.Volume),
	)
}

// LinkName returns the link file name:
// "<Series> #<number> (<year>[-<month>]).cbz". The issue number is
// left-padded with zeros to at least three characters and never
// truncated; the month segment is omitted entirely when Month is unset.
func LinkName(info *models.ComicInfo) string {
	series := CleanSegment(info.Series)
	number := padNumber(CleanNumber(info.Number), 3)
	if info.Month != 0 {
		return fmt.Sprintf("%s #%s (%d-%02d).cbz", series, number, info.Year, info.Month)
	}
	return fmt.Sprintf("%s #%s (%d).cbz", series, number, info.Year)
}

// LinkPath returns the full derived link path for a record.
func LinkPath(targetRoot string, info *models.ComicInfo) string {
	return filepath.Join(LinkDir(targetRoot, info), LinkName(info))
}

// padNumber left-pads n with zeros to at least width characters.
func padNumber(n string, width int) string {
	if len(n) >= width {
		return n
	}
	return strings.Repeat("0", width-len(n)) + n
}
