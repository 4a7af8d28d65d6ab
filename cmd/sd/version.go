package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sd"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sd version %s\n", strings.TrimSpace(sd.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
