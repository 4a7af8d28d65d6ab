package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/sd/pkg/session"
)

var openFlags noteFlags

var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Open a note",
	Long: `Open a note and append entries to it from an interactive prompt.
Without a name, pick one of the notes in the working directory. An empty
directory starts the new-note flow instead.

Commands inside a note:` + session.Help,
	Run: func(cmd *cobra.Command, args []string) {
		dir, name, err := openFlags.resolve(args)
		if err != nil {
			exitWith(err)
		}

		runSession(dir, func(ctx context.Context, s *session.Session) error {
			return s.OpenNote(ctx, name)
		})
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openFlags.register(openCmd)
}
