package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"comiclinks/internal/config"
	"comiclinks/internal/core"
	"comiclinks/internal/library"
	"comiclinks/internal/util"
)

func newRootCommand() *cobra.Command {
	var createFlag bool
	var deleteFlag bool
	var whatIfFlag bool

	rootCmd := &cobra.Command{
		Use:   "comiclinks [flags] <source folder> <target folder>",
		Short: "Creates symlinks to all your comics.",
		Long: `Creates a discrete hierarchical folder structure containing links to all
comics in a comics library (folder of .cbz files), based on the metadata
embedded in each file. The ComicInfo.xml metadata is read from each comic
and a link is created in the target location so that the layout is:

    <target folder>/Publisher/Series/V<Volume>/Series #000 (Year-Month).cbz

Example:

    /home/user/comic_links/Marvel/X-Men/V2009/X-Men #012 (2013-09).cbz

The source and target folders may also be set in config.yml; arguments
take precedence.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !createFlag && !deleteFlag {
				return cmd.Help()
			}

			app, err := core.New()
			if err != nil {
				return err
			}
			source, target, err := resolveFolders(app.Config, args)
			if err != nil {
				return err
			}

			opts := library.Options{DryRun: whatIfFlag, Out: cmd.OutOrStdout()}

			// Cleanup runs first so a combined -c -d run links into an
			// already-pruned tree.
			if deleteFlag {
				cleaner := library.NewCleaner(target, opts)
				links, err := cleaner.RemoveBrokenLinks()
				if err != nil {
					return fmt.Errorf("cleaning up links: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d broken links deleted.\n", links)

				folders, err := cleaner.RemoveEmptyDirs()
				if err != nil {
					return fmt.Errorf("cleaning up folders: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d empty folders deleted.\n", folders)
			}

			if createFlag {
				if err := util.ValidateSourceFolder(source); err != nil {
					return err
				}
				if !whatIfFlag {
					if err := util.ValidateTargetFolder(target); err != nil {
						return err
					}
				}

				linker := library.NewLinker(source, target, opts)
				res, err := linker.Run()
				if err != nil {
					return err
				}
				log.Printf("Scanned %d archives: %d linked, %d skipped, %d failed.",
					res.Scanned, res.Linked, res.Skipped, res.Failed)
			}

			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&createFlag, "create", "c", false, "Creates symlinks in the target folder.")
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Deletes broken symlinks/empty directories in the target folder.")
	rootCmd.Flags().BoolVarP(&whatIfFlag, "whatif", "w", false, "Simulates running the command (does not make any changes).")

	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}

// resolveFolders combines positional arguments with the configuration;
// arguments win.
func resolveFolders(cfg *config.Config, args []string) (source, target string, err error) {
	source, target = cfg.Source, cfg.Target
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		target = args[1]
	}
	if source == "" || target == "" {
		return "", "", errors.New("source and target folders must be given as arguments or set in config.yml")
	}
	return source, target, nil
}
