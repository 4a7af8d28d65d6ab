package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/sd/pkg/adapters/fs"
	sdlifecycle "github.com/aretw0/sd/pkg/adapters/lifecycle"
	"github.com/aretw0/sd/pkg/core"
)

var followFlags noteFlags

var followCmd = &cobra.Command{
	Use:   "follow [name]",
	Short: "Print entries as they are added to a note",
	Long: `Follow a note and print everything appended to it by another sd
session, until interrupted or the note is archived.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, name, err := followFlags.resolve(args)
		if err != nil {
			exitWith(err)
		}
		if name == "" {
			fatal("Error", fmt.Errorf("a note name is required"))
		}

		note := core.NewNoteRef(dir, name)
		follower, err := fs.NewFollower(note.Path(), slog.Default())
		if err != nil {
			fatal("Failed to follow note", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		chunks, err := follower.Start(ctx)
		if err != nil {
			stop()
			exitWith(err)
		}

		src := sdlifecycle.NewSource(note.Path(), chunks)
		if err := src.Start(ctx); err != nil {
			stop()
			fatal("Failed to follow note", err)
		}

		fmt.Printf("Following %s (Ctrl-C to stop)\n", note.Path())
		for event := range src.Events() {
			fmt.Print(event.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(followCmd)
	followFlags.register(followCmd)
}
