package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"comiclinks/internal/core"
	"comiclinks/internal/jobs"
	"comiclinks/internal/library"
	"comiclinks/internal/util"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [<source folder> <target folder>]",
		Short: "Watch the source folder and keep the link tree in sync.",
		Long: `Runs a full link-and-cleanup pass, then watches the source folder for
archive changes and re-syncs the link tree after each change. A periodic
full sync also runs every scan_interval minutes (0 disables it). Stops
on SIGINT/SIGTERM.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := core.New()
			if err != nil {
				return err
			}
			source, target, err := resolveFolders(app.Config, args)
			if err != nil {
				return err
			}
			if err := util.ValidateSourceFolder(source); err != nil {
				return err
			}
			if err := util.ValidateTargetFolder(target); err != nil {
				return err
			}

			opts := library.Options{Out: cmd.OutOrStdout()}

			// The watcher and the scheduler can both ask for a sync; the
			// mutex keeps the passes from interleaving.
			var syncMu sync.Mutex
			syncFn := func() {
				syncMu.Lock()
				defer syncMu.Unlock()

				linker := library.NewLinker(source, target, opts)
				if res, err := linker.Run(); err != nil {
					log.Printf("Link pass failed: %v", err)
				} else {
					log.Printf("Link pass complete: %d linked, %d skipped, %d failed.",
						res.Linked, res.Skipped, res.Failed)
				}

				cleaner := library.NewCleaner(target, opts)
				if n, err := cleaner.RemoveBrokenLinks(); err != nil {
					log.Printf("Link cleanup failed: %v", err)
				} else if n > 0 {
					log.Printf("%d broken links deleted.", n)
				}
				if n, err := cleaner.RemoveEmptyDirs(); err != nil {
					log.Printf("Folder cleanup failed: %v", err)
				} else if n > 0 {
					log.Printf("%d empty folders deleted.", n)
				}
			}

			// Initial pass before watching so the tree starts in sync.
			syncFn()

			watcher := library.NewWatcherService(source, syncFn)
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			scheduler := jobs.StartScheduler(app.Config.ScanInterval, syncFn)
			defer scheduler.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			log.Println("Shutting down watcher.")
			return nil
		},
	}
}
