package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfromboulder/viewmapper/internal/subgraph"
	"github.com/spf13/cobra"
)

var (
	subgraphFocus       string
	subgraphDepthUp     int
	subgraphDepthDown   int
	subgraphMaxNodes    int
	subgraphMaxNodesSet bool
)

// subgraphCmd represents the subgraph command
var subgraphCmd = &cobra.Command{
	Use:   "subgraph",
	Short: "Extract a bounded neighborhood around a focus view",
	Long:  `Extracts views within --up levels upstream and --down levels downstream of --focus, capped at --max-nodes (extractSubgraph operation).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		e, err := loadEngineFromFlags(ctx)
		exitOnError(err)

		var maxNodesArg *int
		if subgraphMaxNodesSet {
			maxNodesArg = &subgraphMaxNodes
		}

		result, err := subgraph.ExtractSubgraph(ctx, e.Graph, subgraphFocus, subgraphDepthUp, subgraphDepthDown, maxNodesArg)
		exitOnError(err)

		fmt.Printf("\nSUBGRAPH around %s (up=%d, down=%d)\n", result.Focus, result.DepthUpstream, result.DepthDownstream)
		fmt.Printf("Members:    %d\n", len(result.Members))
		fmt.Printf("Truncated:  %t\n", result.Truncated)
		fmt.Printf("Visualizable: %t\n", result.Visualizable())
		fmt.Println(strings.Join(result.Members, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(subgraphCmd)
	subgraphCmd.Flags().StringVar(&subgraphFocus, "focus", "", "Focus view's fully-qualified name (required)")
	subgraphCmd.Flags().IntVar(&subgraphDepthUp, "up", 1, "Levels upstream of the focus view to include")
	subgraphCmd.Flags().IntVar(&subgraphDepthDown, "down", 1, "Levels downstream of the focus view to include")
	subgraphCmd.Flags().IntVar(&subgraphMaxNodes, "max-nodes", 50, "Maximum member count (0 means unlimited)")
	subgraphCmd.PreRun = func(cmd *cobra.Command, args []string) {
		subgraphMaxNodesSet = cmd.Flags().Changed("max-nodes")
	}
}
