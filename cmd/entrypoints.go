package cmd

import (
	"context"
	"fmt"

	"github.com/robfromboulder/viewmapper/internal/entrypoint"
	"github.com/spf13/cobra"
)

var (
	entrypointStrategy string
	entrypointLimit    int
	entrypointLimitSet bool
)

// entrypointsCmd represents the entrypoints command
var entrypointsCmd = &cobra.Command{
	Use:   "entrypoints",
	Short: "Suggest starting views for exploring a schema",
	Long:  `Ranks candidate entry-point views by strategy: high-impact, leaf-views, or central-hubs (suggestEntryPoints operation).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		e, err := loadEngineFromFlags(ctx)
		exitOnError(err)

		var limitArg *int
		if entrypointLimitSet {
			limitArg = &entrypointLimit
		}

		suggestions, err := entrypoint.SuggestEntryPoints(ctx, e.Graph, entrypointStrategy, limitArg)
		exitOnError(err)

		fmt.Printf("\nENTRY POINTS (%s)\n", entrypointStrategy)
		for i, s := range suggestions {
			fmt.Printf("%d. %s  [%s, score=%g]\n   %s\n", i+1, s.ViewName, s.Kind, s.Score, s.Reason)
		}
		if len(suggestions) == 0 {
			fmt.Println("(none)")
		}
	},
}

func init() {
	rootCmd.AddCommand(entrypointsCmd)
	entrypointsCmd.Flags().StringVar(&entrypointStrategy, "strategy", "high-impact", "Ranking strategy: high-impact, leaf-views, or central-hubs")
	entrypointsCmd.Flags().IntVar(&entrypointLimit, "limit", 5, "Maximum number of suggestions")
	entrypointsCmd.PreRun = func(cmd *cobra.Command, args []string) {
		entrypointLimitSet = cmd.Flags().Changed("limit")
	}
}
