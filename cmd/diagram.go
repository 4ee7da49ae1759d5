package cmd

import (
	"context"
	"fmt"

	"github.com/robfromboulder/viewmapper/internal/diagram"
	"github.com/robfromboulder/viewmapper/internal/subgraph"
	"github.com/spf13/cobra"
)

var (
	diagramFocus     string
	diagramDepthUp   int
	diagramDepthDown int
	diagramMaxNodes  int
)

// diagramCmd represents the diagram command
var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render a mermaid diagram of a schema or a focused subgraph",
	Long:  `Renders every loaded view (renderFullSchema), or --focus's bounded subgraph (renderSubgraph), as a mermaid diagram.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		e, err := loadEngineFromFlags(ctx)
		exitOnError(err)

		if diagramFocus == "" {
			fmt.Print(diagram.RenderFullSchema(e.Graph))
			return
		}

		result, err := subgraph.ExtractSubgraph(ctx, e.Graph, diagramFocus, diagramDepthUp, diagramDepthDown, &diagramMaxNodes)
		exitOnError(err)
		fmt.Print(diagram.RenderSubgraph(e.Graph, result))
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramCmd.Flags().StringVar(&diagramFocus, "focus", "", "Focus view; omit to render the whole schema")
	diagramCmd.Flags().IntVar(&diagramDepthUp, "up", 1, "Levels upstream of the focus view to include")
	diagramCmd.Flags().IntVar(&diagramDepthDown, "down", 1, "Levels downstream of the focus view to include")
	diagramCmd.Flags().IntVar(&diagramMaxNodes, "max-nodes", 50, "Maximum member count for a focused subgraph")
}
