package registry

import "errors"

// Sentinel errors for consistent error handling by callers.
var (
	ErrNotStarted     = errors.New("registry not started")
	ErrAlreadyStarted = errors.New("registry already started")
	ErrToolNotFound   = errors.New("tool not found")
	ErrDuplicateTool  = errors.New("tool already registered")
)

// JSON-RPC 2.0 error codes, plus the MCP tool-not-found extension.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeToolNotFound   = -32001
)
