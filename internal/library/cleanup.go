// This file implements cleanup of the generated link tree: removing
// symlinks whose targets have disappeared and pruning directories left
// empty afterwards.

package library

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Cleaner removes stale entries from a generated link tree.
type Cleaner struct {
	root string
	opts Options
}

// NewCleaner creates a Cleaner for the given link tree root.
func NewCleaner(root string, opts Options) *Cleaner {
	return &Cleaner{root: root, opts: opts}
}

// RemoveBrokenLinks walks the tree and deletes every symlink whose
// target no longer resolves to an existing file. A missing root counts
// as an empty tree. It returns the number of links removed (or counted,
// in a dry run).
func (c *Cleaner) RemoveBrokenLinks() (int, error) {
	if _, err := os.Lstat(c.root); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	removed := 0
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if _, err := os.Stat(path); err == nil {
			// Target still resolves. Leave it alone.
			return nil
		}
		// Any resolution failure counts as broken: a missing target, a
		// symlink loop, anything Stat cannot follow.
		if !c.opts.DryRun {
			if err := os.Remove(path); err != nil {
				log.Printf("Removing broken link %s: %v", path, err)
				return nil
			}
		}
		removed++
		return nil
	})
	return removed, err
}

// RemoveEmptyDirs prunes empty directories under the root, children
// first, so a chain of directories that only contain each other
// collapses in a single pass. The root itself is removed when it ends up
// empty, and a missing root counts as an empty tree. It returns the
// number of directories removed (or counted, in a dry run, where the
// collapse is modeled without deleting anything).
func (c *Cleaner) RemoveEmptyDirs() (int, error) {
	if _, err := os.Lstat(c.root); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	removed, _, err := c.sweepDir(c.root)
	return removed, err
}

// sweepDir recursively prunes path and reports whether path itself was
// (or, in a dry run, would have been) removed.
func (c *Cleaner) sweepDir(path string) (removed int, gone bool, err error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, false, err
	}

	remaining := len(entries)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub, subGone, err := c.sweepDir(filepath.Join(path, e.Name()))
		removed += sub
		if err != nil {
			return removed, false, err
		}
		if subGone {
			remaining--
		}
	}

	if remaining > 0 {
		return removed, false, nil
	}
	if !c.opts.DryRun {
		if err := os.Remove(path); err != nil {
			return removed, false, err
		}
	}
	return removed + 1, true, nil
}
