package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sd/pkg/adapters/fs"
	"github.com/aretw0/sd/pkg/adapters/markdown"
)

var (
	listJSON      bool
	listDirectory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes in the working directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir := listDirectory
		if dir == "" {
			dir = cfg.Directory
		}

		storage := fs.NewStorage(fs.Config{Logger: slog.Default()})
		outlines, err := markdown.Collect(storage, dir)
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(outlines); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		for _, o := range outlines {
			title := ""
			if o.Title != "" {
				title = fmt.Sprintf("- %s", o.Title)
			}
			last := o.LastDay()
			if last == "" {
				last = "no entries"
			}
			fmt.Printf("%s %s (%d entries, last: %s)\n", o.Name, title, o.Entries, last)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listDirectory, "directory", "d", "", "Working directory (default from config, else .)")
}
