package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/master-g/iasejbc/cmd/iasejbc/buildinfo"
)

// versionCmd prints version and build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("iasejbc", buildinfo.VersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
