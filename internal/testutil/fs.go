package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestCBZ is a helper that creates a temporary CBZ file with a few
// page entries and, when comicInfo is non-empty, an embedded
// ComicInfo.xml document. It returns the path to the created file.
func CreateTestCBZ(t *testing.T, dir, name, comicInfo string) string {
	t.Helper()

	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create temp cbz file: %v", err)
	}
	defer file.Close()

	zipWriter := zip.NewWriter(file)
	defer zipWriter.Close()

	for _, page := range []string{"01.jpg", "02.jpg"} {
		w, err := zipWriter.Create(page)
		if err != nil {
			t.Fatalf("Failed to create entry '%s' in zip: %v", page, err)
		}
		if _, err := w.Write([]byte("image data")); err != nil {
			t.Fatalf("Failed to write zip entry: %v", err)
		}
	}

	if comicInfo != "" {
		w, err := zipWriter.Create("ComicInfo.xml")
		if err != nil {
			t.Fatalf("Failed to create ComicInfo.xml entry: %v", err)
		}
		if _, err := w.Write([]byte(comicInfo)); err != nil {
			t.Fatalf("Failed to write ComicInfo.xml entry: %v", err)
		}
	}

	return filePath
}

// ComicInfoXML renders a minimal ComicInfo.xml document from the given
// field values. Empty values are emitted as empty elements so tests can
// exercise incomplete metadata.
func ComicInfoXML(publisher, series, volume, number, year, month string) string {
	return `<?xml version="1.0"?>
<ComicInfo xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <Publisher>` + publisher + `</Publisher>
  <Series>` + series + `</Series>
  <Volume>` + volume + `</Volume>
  <Number>` + number + `</Number>
  <Year>` + year + `</Year>
  <Month>` + month + `</Month>
  <PageCount>22</PageCount>
</ComicInfo>`
}
