// Folder path validation for the CLI: the source library must already
// exist, the target only needs to be creatable.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateSourceFolder checks that path exists and is a readable
// directory.
func ValidateSourceFolder(path string) error {
	if path == "" {
		return fmt.Errorf("source folder cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access source folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", path)
	}
	if _, err := os.ReadDir(path); err != nil {
		return fmt.Errorf("cannot read source folder: %w", err)
	}
	return nil
}

// ValidateTargetFolder checks that path is a writable directory, or a
// location where one could be created.
func ValidateTargetFolder(path string) error {
	if path == "" {
		return fmt.Errorf("target folder cannot be empty")
	}

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("target path exists but is not a directory: %s", path)
		}
		return checkWritePermission(path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access target folder: %w", err)
	}

	// Target doesn't exist yet. It is enough that some existing ancestor
	// is a writable directory; the linker creates the rest on demand.
	parent := filepath.Dir(path)
	for {
		pInfo, pErr := os.Stat(parent)
		if pErr == nil {
			if !pInfo.IsDir() {
				return fmt.Errorf("target ancestor is not a directory: %s", parent)
			}
			return checkWritePermission(parent)
		}
		if !os.IsNotExist(pErr) {
			return fmt.Errorf("cannot access target ancestor: %w", pErr)
		}
		next := filepath.Dir(parent)
		if next == parent {
			return fmt.Errorf("no existing ancestor for target folder: %s", path)
		}
		parent = next
	}
}

// checkWritePermission verifies write access by creating and removing a
// probe file inside the directory.
func checkWritePermission(dirPath string) error {
	probe := filepath.Join(dirPath, ".comiclinks_write_check")
	file, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("no write permission for %s: %w", dirPath, err)
	}
	file.Close()
	os.Remove(probe)
	return nil
}
