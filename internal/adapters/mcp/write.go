package mcp

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notewriter/internal/application/commands"
	"notewriter/internal/ports"
)

// StorageFactory builds the storage a tool call writes to. Confirmations
// must go to out: stdout carries the MCP protocol.
type StorageFactory func(out io.Writer) ports.NoteStorage

// RegisterWriteTools adds the note writing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, newStorage StorageFactory) {
	s.AddTool(writeNoteTool(), writeNoteHandler(newStorage))
}

// textInput hands a fixed text to the write command
type textInput struct {
	text string
}

func (t textInput) GetNote(context.Context) (string, error) {
	return t.text, nil
}

// --- write_note ---

func writeNoteTool() mcp.Tool {
	return mcp.NewTool("write_note",
		mcp.WithDescription("Store a note. The note is timestamped on arrival and kept verbatim."),
		mcp.WithString("note",
			mcp.Description("Text of the note. May span multiple lines."),
			mcp.Required(),
		),
	)
}

// writeNoteHandler serializes its calls. The server dispatches tool calls on
// several goroutines, and storages such as the folder counter assume a
// single writer.
func writeNoteHandler(newStorage StorageFactory) server.ToolHandlerFunc {
	var mu sync.Mutex

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		note, err := req.RequireString("note")
		if err != nil {
			return toolError(err)
		}

		mu.Lock()
		defer mu.Unlock()

		var out bytes.Buffer
		cmd := commands.NewWriteNoteCommand(textInput{text: note}, newStorage(&out))
		if _, err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(strings.TrimSpace(out.String())), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
