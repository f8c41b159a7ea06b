package cli

import (
	"github.com/spf13/cobra"

	"github.com/vabank-dev/vabank/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the listings to AI assistants",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Runs a Model Context Protocol server with tools to open listing
sessions, filter them, load more items and read rendered articles.

The server speaks JSON-RPC over stdio unless --http is given, in which
case the streamable HTTP transport is served at /mcp.

  vabank mcp serve
  vabank mcp serve --http :4010

To register it with a client:

  {"mcpServers": {"vabank": {"command": "vabank", "args": ["mcp", "serve"]}}}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		server, err := mcp.NewServer(&mcp.Ports{
			Listing: listingService,
			Content: contentService,
			Render:  renderService,
		})
		if err != nil {
			return err
		}

		if mcpHTTPAddr == "" {
			return server.Run(cmd.Context())
		}
		cmd.PrintErrf("MCP endpoint: http://localhost%s%s\n", mcpHTTPAddr, mcp.Endpoint)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
