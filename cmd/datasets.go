package cmd

import (
	"fmt"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
	"github.com/robfromboulder/viewmapper/internal/datasets"
	"github.com/spf13/cobra"
)

// datasetsCmd represents the datasets command
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List bundled offline datasets",
	Long:  `Lists the view dumps embedded in the binary, usable via --dataset instead of --file or --db.`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := datasets.Manifest()
		if err != nil {
			fmt.Println(apperrors.Diagnostic(err))
			return
		}
		for _, entry := range entries {
			fmt.Printf("%-24s %-12s %s\n", entry.Name, entry.ExpectedLevel, entry.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
