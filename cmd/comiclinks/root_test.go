// This file tests the command-line surface: mode selection, dry runs,
// and the combined create/delete flow.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"comiclinks/internal/testutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootShowsHelpWithoutMode(t *testing.T) {
	out, err := runCommand(t, t.TempDir(), t.TempDir())
	require.NoError(t, err)
	require.Contains(t, out, "Usage:", "expected help text when neither --create nor --delete is set")
}

func TestRootCreate(t *testing.T) {
	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	archive := testutil.CreateTestCBZ(t, sourceDir, "xmen12.cbz",
		testutil.ComicInfoXML("Marvel", "X-Men", "2009", "12", "2013", "9"))

	_, err := runCommand(t, "--create", sourceDir, targetDir)
	require.NoError(t, err)

	link := filepath.Join(targetDir, "Marvel", "X-Men", "V2009", "X-Men #012 (2013-09).cbz")
	resolved, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, archive, resolved)
}

func TestRootCreateWhatIf(t *testing.T) {
	sourceDir := t.TempDir()
	targetDir := filepath.Join(t.TempDir(), "links")

	testutil.CreateTestCBZ(t, sourceDir, "xmen12.cbz",
		testutil.ComicInfoXML("Marvel", "X-Men", "2009", "12", "2013", "9"))

	out, err := runCommand(t, "-c", "-w", sourceDir, targetDir)
	require.NoError(t, err)

	require.Contains(t, out, "X-Men #012 (2013-09).cbz")
	_, err = os.Stat(targetDir)
	require.True(t, os.IsNotExist(err), "whatif run must not create the target tree")
}

func TestRootDelete(t *testing.T) {
	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	dir := filepath.Join(targetDir, "Marvel", "X-Men", "V2009")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "gone.cbz"),
		filepath.Join(dir, "X-Men #012 (2013-09).cbz")))

	out, err := runCommand(t, "--delete", sourceDir, targetDir)
	require.NoError(t, err)

	require.Contains(t, out, "1 broken links deleted.")
	// The emptied chain plus the target root collapse in the same pass.
	require.Contains(t, out, "4 empty folders deleted.")
}

func TestRootCreateDeleteFreshTarget(t *testing.T) {
	// A first run with -c -d into a target that does not exist yet must
	// report zero deletions and still create the links.
	sourceDir := t.TempDir()
	targetDir := filepath.Join(t.TempDir(), "links")

	testutil.CreateTestCBZ(t, sourceDir, "xmen12.cbz",
		testutil.ComicInfoXML("Marvel", "X-Men", "2009", "12", "2013", "9"))

	out, err := runCommand(t, "-c", "-d", sourceDir, targetDir)
	require.NoError(t, err)

	require.Contains(t, out, "0 broken links deleted.")
	require.Contains(t, out, "0 empty folders deleted.")

	link := filepath.Join(targetDir, "Marvel", "X-Men", "V2009", "X-Men #012 (2013-09).cbz")
	_, err = os.Lstat(link)
	require.NoError(t, err)
}

func TestRootRequiresFolders(t *testing.T) {
	_, err := runCommand(t, "--create")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "source and target"),
		"expected an error about missing folders, got: %v", err)
}
