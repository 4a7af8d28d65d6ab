package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/sd/pkg/session"
)

var newFlags noteFlags

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new note",
	Long: `Create a new note in the working directory and open it.
The .md extension is added when missing. The name and title are asked for
when not supplied.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, name, err := newFlags.resolve(args)
		if err != nil {
			exitWith(err)
		}

		runSession(dir, func(ctx context.Context, s *session.Session) error {
			return s.NewNote(ctx, name)
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newFlags.register(newCmd)
}
