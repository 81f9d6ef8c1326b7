package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateSourceFolder(t *testing.T) {
	tempDir := t.TempDir()

	if err := ValidateSourceFolder(tempDir); err != nil {
		t.Errorf("existing directory should validate, got: %v", err)
	}
	if err := ValidateSourceFolder(""); err == nil {
		t.Error("empty path should not validate")
	}
	if err := ValidateSourceFolder(filepath.Join(tempDir, "missing")); err == nil {
		t.Error("missing directory should not validate")
	}

	filePath := filepath.Join(tempDir, "file.cbz")
	if err := os.WriteFile(filePath, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := ValidateSourceFolder(filePath); err == nil {
		t.Error("regular file should not validate as a source folder")
	}
}

func TestValidateTargetFolder(t *testing.T) {
	tempDir := t.TempDir()

	if err := ValidateTargetFolder(tempDir); err != nil {
		t.Errorf("existing writable directory should validate, got: %v", err)
	}
	if err := ValidateTargetFolder(""); err == nil {
		t.Error("empty path should not validate")
	}

	// Not existing yet is fine as long as an ancestor is writable.
	nested := filepath.Join(tempDir, "links", "by-publisher")
	if err := ValidateTargetFolder(nested); err != nil {
		t.Errorf("creatable nested target should validate, got: %v", err)
	}

	filePath := filepath.Join(tempDir, "occupied")
	if err := os.WriteFile(filePath, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := ValidateTargetFolder(filePath); err == nil {
		t.Error("path occupied by a regular file should not validate")
	}
}
