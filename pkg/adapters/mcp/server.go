// Package mcp exposes the machine catalog to MCP clients: tools to list,
// inspect and run stored machines over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/automat"
	"github.com/aretw0/automat/pkg/definition"
	"github.com/aretw0/automat/pkg/dfa"
	"github.com/aretw0/automat/pkg/ports"
)

// ProcessResponse is the structured result of the process_sequence tool.
type ProcessResponse struct {
	Machine    string `json:"machine" jsonschema_description:"Name of the machine that ran"`
	Accepted   bool   `json:"accepted" jsonschema_description:"Whether the machine accepted the sequence"`
	FinalState string `json:"final_state" jsonschema_description:"State the machine ended in"`
	Symbols    int    `json:"symbols" jsonschema_description:"Number of symbols consumed"`
}

// Server wraps a DefinitionStore and exposes it as an MCP Server.
type Server struct {
	store     ports.DefinitionStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.DefinitionStore) *Server {
	s := &Server{
		store:     store,
		mcpServer: server.NewMCPServer("automat-mcp", automat.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: process_sequence
	processTool := mcp.NewTool("process_sequence",
		mcp.WithDescription("Run an input sequence through a stored machine and report acceptance."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Name of the stored machine")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input sequence, one character per symbol")),
		mcp.WithOutputSchema[ProcessResponse](),
	)
	s.mcpServer.AddTool(processTool, mcp.NewStructuredToolHandler(s.handleProcess))

	// TOOL: inspect_machine
	inspectTool := mcp.NewTool("inspect_machine",
		mcp.WithDescription("Get the full definition of a stored machine."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Name of the stored machine")),
		mcp.WithOutputSchema[definition.Definition](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspect))

	// TOOL: list_machines
	s.mcpServer.AddTool(mcp.NewTool("list_machines",
		mcp.WithDescription("List the names of all stored machines."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.store.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(names)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleProcess(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProcessResponse, error) {
	name, _ := args["machine"].(string)
	input, _ := args["input"].(string)

	def, err := s.store.Load(ctx, name)
	if err != nil {
		return ProcessResponse{}, fmt.Errorf("load failed: %w", err)
	}

	m, err := def.Compile()
	if err != nil {
		return ProcessResponse{}, fmt.Errorf("compile failed: %w", err)
	}

	seq := dfa.Symbols(input)
	accepted, err := m.Process(seq)
	if err != nil {
		return ProcessResponse{}, fmt.Errorf("process failed: %w", err)
	}

	return ProcessResponse{
		Machine:    name,
		Accepted:   accepted,
		FinalState: m.CurrentState().Name,
		Symbols:    len(seq),
	}, nil
}

func (s *Server) handleInspect(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (definition.Definition, error) {
	name, _ := args["machine"].(string)

	def, err := s.store.Load(ctx, name)
	if err != nil {
		return definition.Definition{}, fmt.Errorf("load failed: %w", err)
	}
	return def, nil
}

func (s *Server) registerResources() {
	// EXPOSE: automat://machines
	s.mcpServer.AddResource(mcp.NewResource("automat://machines", "Stored Machine Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list machines: %w", err)
		}

		catalog := make([]definition.Definition, 0, len(names))
		for _, name := range names {
			def, err := s.store.Load(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to load machine %q: %w", name, err)
			}
			catalog = append(catalog, def)
		}
		jsonBytes, _ := json.Marshal(catalog)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "automat://machines",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
