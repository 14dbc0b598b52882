package main

import (
	"context"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notewriter/internal/adapters/filesystem"
	mcpadapter "notewriter/internal/adapters/mcp"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	mcpServer := server.NewMCPServer(
		"notewriter-mcp",
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

	mcpadapter.RegisterWriteTools(mcpServer, func(out io.Writer) ports.NoteStorage {
		return filesystem.NewFolderStorage(config.FolderRoot, out, nil)
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("notewriter-mcp: %v", err)
	}
}
