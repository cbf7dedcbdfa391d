package mathtool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler computes a tool result string from coerced arguments.
// Handlers are pure: no I/O, no shared state, no logging.
type Handler func(ctx context.Context, args Args) (string, error)

// Definition declares a single tool: its name, description, parameter
// schema, and handler. Definitions are registered in a lookup table
// keyed by Name; dispatch never relies on reflection.
type Definition struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Validate reports whether the definition is complete enough to register.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: tool name is required", ErrInvalidArgument)
	}
	if d.Handler == nil {
		return fmt.Errorf("%w: tool %q has no handler", ErrInvalidArgument, d.Name)
	}
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: tool %q has an unnamed parameter", ErrInvalidArgument, d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: tool %q declares parameter %q twice", ErrInvalidArgument, d.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Call coerces and validates raw arguments against the declared
// parameters, then invokes the handler. Validation failures surface
// before any computation runs.
func (d Definition) Call(ctx context.Context, raw map[string]any) (string, error) {
	args, err := CoerceArgs(d.Params, raw)
	if err != nil {
		return "", err
	}
	return d.Handler(ctx, args)
}

// InputSchema returns the tool's declared JSON Schema as a plain map.
func (d Definition) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	required := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		properties[p.Name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// MCPTool returns the SDK tool descriptor used in tools/list responses.
func (d Definition) MCPTool() mcp.Tool {
	return mcp.Tool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: d.InputSchema(),
	}
}
