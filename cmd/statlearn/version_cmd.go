package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in statlearn's version
	VersionMajor = 0
	// VersionMinor is the minor number in statlearn's version
	VersionMinor = 1
	// VersionPatch is the patch number in statlearn's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of statlearn",
		Long:  `All software has versions. This is statlearn's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statlearn v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
