package cmd

import (
	"github.com/huangsam/schoolscore/internal/catalog"
	"github.com/huangsam/schoolscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the schoolscore MCP server",
	Long:  `Launch an MCP server that allows AI agents to read school reports, grades, pending edits and survey tallies via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// School id is optional here; each tool call can name one.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		rows, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		graphs, err := catalog.LoadGraphs(cfg.GraphsPath)
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, mcp.Deps{
			Manager: storeManager,
			Pending: pendingStore,
			Catalog: rows,
			Graphs:  graphs,
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
