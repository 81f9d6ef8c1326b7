// This file is responsible for opening comic archive files (.cbz, which
// are ZIP containers) and extracting the embedded ComicInfo.xml metadata.

package library

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"comiclinks/internal/models"
)

// MetadataEntryName is the archive entry that holds the comic metadata.
const MetadataEntryName = "ComicInfo.xml"

// Classified per-archive failures. ReadComicInfo wraps each with the
// archive path so callers can pick a report code with errors.Is.
var (
	ErrCorruptArchive     = errors.New("not a valid comic archive")
	ErrMetadataMissing    = errors.New("no ComicInfo.xml entry")
	ErrIncompleteMetadata = errors.New("incomplete metadata")
)

// IsSupportedArchive checks if a filename has a supported comic archive
// extension. Only .cbz (zip) containers are supported.
func IsSupportedArchive(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".cbz"
}

// comicInfoXML mirrors the top-level ComicInfo.xml elements we consult.
// Everything is decoded as text first; the numeric fields are converted
// afterwards so a malformed Year or Month leaves the field unset instead
// of aborting the parse.
type comicInfoXML struct {
	Publisher string `xml:"Publisher"`
	Series    string `xml:"Series"`
	Volume    string `xml:"Volume"`
	Number    string `xml:"Number"`
	Year      string `xml:"Year"`
	Month     string `xml:"Month"`
}

// ReadComicInfo opens the archive at path and returns its validated
// metadata record. Failures are classified: ErrCorruptArchive when the
// container cannot be opened or its metadata entry cannot be parsed,
// ErrMetadataMissing when there is no ComicInfo.xml entry, and
// ErrIncompleteMetadata when a required field is missing.
func ReadComicInfo(path string) (*models.ComicInfo, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}
	defer r.Close()

	entry := findEntry(&r.Reader, MetadataEntryName)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrMetadataMissing, path)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}
	defer rc.Close()

	info, err := parseComicInfo(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}
	if !info.Validate() {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteMetadata, path)
	}
	return info, nil
}

func findEntry(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// parseComicInfo decodes a ComicInfo.xml document. Parsing is permissive:
// elements other than the six known ones are ignored, as are attributes.
func parseComicInfo(r io.Reader) (*models.ComicInfo, error) {
	var raw comicInfoXML
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	info := &models.ComicInfo{
		Publisher: strings.TrimSpace(raw.Publisher),
		Series:    strings.TrimSpace(raw.Series),
		Volume:    strings.TrimSpace(raw.Volume),
		Number:    strings.TrimSpace(raw.Number),
	}
	info.Year, _ = strconv.Atoi(strings.TrimSpace(raw.Year))
	info.Month, _ = strconv.Atoi(strings.TrimSpace(raw.Month))
	return info, nil
}
