package cmd

import (
	"context"
	"fmt"

	"github.com/robfromboulder/viewmapper/internal/complexity"
	"github.com/spf13/cobra"
)

var analyzeSchemaName string

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Assess a loaded schema's complexity and exploration guidance",
	Long:  `Loads a set of views and classifies the resulting schema's complexity from its view count (analyzeSchema operation).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		e, err := loadEngineFromFlags(ctx)
		exitOnError(err)

		sc := complexity.FromViewCount(analyzeSchemaName, e.Graph.VertexCount())

		fmt.Println("\nSCHEMA COMPLEXITY")
		fmt.Printf("Schema:                %s\n", sc.SchemaName)
		fmt.Printf("View count:            %d\n", sc.ViewCount)
		fmt.Printf("Level:                 %s\n", sc.Level)
		fmt.Printf("Requires entry point:  %t\n", sc.RequiresEntryPoint)
		fmt.Printf("Full diagram feasible: %t\n", sc.FullDiagramFeasible)
		fmt.Printf("Guidance:              %s\n", sc.Guidance)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeSchemaName, "schema-name", "", "Label to report the analyzed schema under")
}
