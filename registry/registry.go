package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/mcpmath/mathtool"
)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
}

// ServerInfo describes this MCP server for the initialize response
// and the health endpoint.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry is the tool lookup table behind the MCP server: definitions
// keyed by name, dispatched without reflection, with an explicit
// start/stop lifecycle instead of module-level singleton state.
//
// Tool handlers are pure, so Execute is safe for concurrent use; the
// mutex only guards the table itself, which is read-mostly after
// startup.
type Registry struct {
	mu     sync.RWMutex
	config Config

	tools map[string]mathtool.Definition
	order []string

	started   bool
	startedAt time.Time
}

// New creates an empty Registry with the given config.
func New(cfg Config) *Registry {
	return &Registry{
		config: cfg,
		tools:  make(map[string]mathtool.Definition),
	}
}

// Register adds a tool definition to the lookup table.
func (r *Registry) Register(def mathtool.Definition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, def.Name)
	}
	r.tools[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// RegisterCatalog registers every definition in defs, stopping at the
// first failure.
func (r *Registry) RegisterCatalog(defs []mathtool.Definition) error {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a tool definition by name.
func (r *Registry) Get(name string) (mathtool.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.tools[name]
	if !ok {
		return mathtool.Definition{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return def, nil
}

// ListAll returns SDK tool descriptors in registration order.
func (r *Registry) ListAll() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].MCPTool())
	}
	return tools
}

// Execute runs a tool by name. Arguments are validated against the
// tool's declared parameters before its handler runs.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	def, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return def.Call(ctx, args)
}

// Start marks the registry ready to serve and records the start time
// reported by health checks.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrAlreadyStarted
	}
	r.started = true
	r.startedAt = time.Now()
	return nil
}

// Stop tears down the serving lifecycle. Stopping a registry that was
// never started is a no-op.
func (r *Registry) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = false
	return nil
}

// HealthCheck returns nil once the registry has been started.
func (r *Registry) HealthCheck(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.started {
		return ErrNotStarted
	}
	return nil
}

// Uptime returns how long the registry has been serving, or zero when
// it is stopped.
func (r *Registry) Uptime() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.started {
		return 0
	}
	return time.Since(r.startedAt)
}

// Stats describes the registry's current state.
type Stats struct {
	Tools   int
	Started bool
	Uptime  time.Duration
}

// Stats returns registry statistics.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Stats{
		Tools:   len(r.tools),
		Started: r.started,
	}
	if r.started {
		s.Uptime = time.Since(r.startedAt)
	}
	return s
}
