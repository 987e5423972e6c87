package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RoutePicker chooses a random content route.
type RoutePicker interface {
	Pick(beta bool) string
}

// RandomPathInput represents the MCP tool input for picking a random route.
type RandomPathInput struct {
	Beta *bool `json:"beta,omitempty" jsonschema:"include beta-only areas; defaults to the server setting"`
}

// RandomPathResult represents the MCP tool output for picking a random route.
type RandomPathResult struct {
	Path string `json:"path" jsonschema:"site path of a random object page"`
}

// RandomPathTool defines the MCP tool schema for random routes.
func RandomPathTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_path",
		Description: "Returns the path of a random object page from one content area",
	}
}

// RandomPathHandler executes a random route request.
func RandomPathHandler(picker RoutePicker, defaultBeta bool) mcp.ToolHandlerFor[RandomPathInput, RandomPathResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RandomPathInput) (*mcp.CallToolResult, RandomPathResult, error) {
		if picker == nil {
			return nil, RandomPathResult{}, fmt.Errorf("route picker is not configured")
		}
		beta := defaultBeta
		if input.Beta != nil {
			beta = *input.Beta
		}
		return nil, RandomPathResult{Path: "/" + picker.Pick(beta)}, nil
	}
}
