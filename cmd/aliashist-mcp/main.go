package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"aliashist/internal/adapters/filesystem"
	mcpadapter "aliashist/internal/adapters/mcp"
	"aliashist/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	vault := filesystem.NewVault(*vaultFlag)
	editor := filesystem.NewEditor(vault)

	mcpServer := server.NewMCPServer(
		"aliashist-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, vault, editor, vault.Root())

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("aliashist-mcp: %v", err)
	}
}
