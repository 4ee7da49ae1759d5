package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of viewmapper",
	Long:  `All software has versions. This is viewmapper's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("viewmapper v%s\n", rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
