// Package registry serves the mathtool catalog over MCP.
//
// Registry keeps tool definitions in a lookup table keyed by tool name
// and dispatches tools/call requests to the matching handler after
// validating arguments against the tool's declared schema.
//
// Features:
//   - Tool registration from the mathtool catalog
//   - MCP protocol handlers (initialize, ping, tools/list, tools/call)
//   - Multiple transports (stdio, streamable HTTP, SSE)
//   - Health endpoint with uptime reporting
//   - Explicit Start/Stop lifecycle
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "mcpmath",
//	        Version: "1.0.0",
//	    },
//	})
//
//	if err := reg.RegisterCatalog(mathtool.Catalog()); err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := reg.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer reg.Stop()
//
//	registry.ServeStdio(ctx, reg)
//
// Protocol errors (unknown method, unknown tool, malformed request)
// surface as JSON-RPC errors. Domain errors from the tool set (divide
// by zero, negative sqrt input, factorial out of range) surface as
// in-band tool results with isError set, carrying the named condition
// and parameter in the message.
package registry
