// This file contains the main logic for linking a comics library. It
// walks the source tree, extracts metadata from each archive, and
// materializes one symlink per comic at its derived target location.

package library

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"

	"comiclinks/internal/util"
)

// Options control how a mutating pass behaves.
type Options struct {
	// DryRun converts every filesystem mutation into a report/count-only
	// action.
	DryRun bool
	// Out receives the per-archive report lines. Defaults to os.Stdout.
	Out io.Writer
}

func (o Options) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Result summarizes one linking pass over the source tree.
type Result struct {
	Scanned int // archives visited
	Linked  int // links created (or reported, in a dry run)
	Skipped int // a filesystem entry already existed at the link path
	Failed  int // archives reported with an error code
}

// Linker walks a source tree of comic archives and creates one symlink
// per archive under the target root.
type Linker struct {
	source string
	target string
	opts   Options
}

// NewLinker creates a Linker for the given source and target roots.
func NewLinker(source, target string, opts Options) *Linker {
	return &Linker{source: source, target: target, opts: opts}
}

// Run performs a full linking pass. Archives are processed in natural
// sort order so report output is stable across runs. Per-archive
// failures are reported and skipped; they never abort the pass.
func (l *Linker) Run() (*Result, error) {
	var archives []string
	err := filepath.WalkDir(l.source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.source {
				return err
			}
			// An unreadable subdirectory only loses its own contents;
			// the rest of the pass continues.
			log.Printf("Skipping %s: %v", path, err)
			return nil
		}
		if !d.IsDir() && IsSupportedArchive(d.Name()) {
			archives = append(archives, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.source, err)
	}

	sort.Slice(archives, func(i, j int) bool {
		return util.NaturalSortLess(archives[i], archives[j])
	})

	res := &Result{}
	for _, path := range archives {
		res.Scanned++
		l.linkArchive(path, res)
	}
	return res, nil
}

// linkArchive processes a single archive: extract, derive, link. Every
// outcome is accounted for in res; errors are reported with their code
// and never propagate.
func (l *Linker) linkArchive(path string, res *Result) {
	info, err := ReadComicInfo(path)
	if err != nil {
		res.Failed++
		switch {
		case errors.Is(err, ErrCorruptArchive):
			fmt.Fprintf(l.opts.out(), "ZIP_ERROR: %s\n", path)
		case errors.Is(err, ErrMetadataMissing):
			fmt.Fprintf(l.opts.out(), "XML_NOT_FOUND: %s\n", path)
		case errors.Is(err, ErrIncompleteMetadata):
			fmt.Fprintf(l.opts.out(), "INCOMPLETE_METADATA: %s\n", path)
		default:
			log.Printf("Error reading %s: %v", path, err)
		}
		return
	}

	dir := LinkDir(l.target, info)
	link := filepath.Join(dir, LinkName(info))

	if l.opts.DryRun {
		fmt.Fprintln(l.opts.out(), link)
		res.Linked++
		return
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		res.Failed++
		fmt.Fprintf(l.opts.out(), "SYMLINK_ERROR: %s -> %s\n", path, link)
		log.Printf("Creating %s: %v", dir, err)
		return
	}

	// Lstat, not Stat: an existing link counts even when its target is
	// gone. Broken links are the cleaner's job, not ours.
	if _, err := os.Lstat(link); err == nil {
		res.Skipped++
		return
	}

	if err := os.Symlink(path, link); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Lost a create race with another writer; same as a skip.
			res.Skipped++
			return
		}
		res.Failed++
		fmt.Fprintf(l.opts.out(), "SYMLINK_ERROR: %s -> %s\n", path, link)
		return
	}
	res.Linked++
}
