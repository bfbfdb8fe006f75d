package main

import (
	"errors"
	"fmt"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/cleaner"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/handiism/tagtidy/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCommand(settings *config.Settings, store audio.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "tagtidy [--] FILE...",
		Short: "Remove redundant album artist and disc tags",
		Long: `Remove redundant tags from the audio files of a single album disc.

If every file has the same artist and the first file's album artist equals
it, the album artist tag is removed from all files. Files whose disc total
is 1 lose their disc total and disc number tags.

The files given are assumed to be exactly one disc of one album.
Put -- before the file list when a file name starts with a dash.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := newPrinter(out, !settings.NoColor && logging.IsTerminal(out))

			c := cleaner.NewCleaner(store, settings, p.progress)
			report, err := c.Clean(cmd.Context(), args)
			if errors.Is(err, cleaner.ErrNoInputFiles) {
				fmt.Fprintln(out, "No input files!")
				return nil
			}
			if err != nil {
				return err
			}

			if settings.Summary {
				p.summary(report)
			}
			return nil
		},
	}
}
