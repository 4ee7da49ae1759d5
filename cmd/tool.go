package cmd

import (
	"context"
	"fmt"

	"github.com/robfromboulder/viewmapper/internal/toolcontract"
	"github.com/spf13/cobra"
)

// toolCallCmd represents the tool-call command
var toolCallCmd = &cobra.Command{
	Use:   "tool-call <operation> <json-args>",
	Short: "Dispatch a single reasoning-agent tool call against a loaded schema",
	Long: `Decodes json-args against operation's input schema, invokes the
matching service (analyzeSchema, suggestEntryPoints, extractSubgraph,
renderSubgraph, renderFullSchema), and prints its JSON output. This is
the CLI-level passthrough a reasoning agent's tool runner shells out to.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		e, err := loadEngineFromFlags(ctx)
		exitOnError(err)

		operation, rawArgs := args[0], []byte(args[1])
		out, err := toolcontract.Dispatch(ctx, e.Graph, operation, rawArgs)
		exitOnError(err)
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(toolCallCmd)
}
