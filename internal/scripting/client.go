package scripting

import (
	"context"

	"go.lsp.dev/jsonrpc2"
)

// Client sends LSP messages to a language server.
type Client interface {
	// Notify sends a notification. It does not wait for the server.
	Notify(ctx context.Context, method string, params any) error
	// Call sends a request and decodes the result into result.
	Call(ctx context.Context, method string, params, result any) error
}

// ConnClient is a Client backed by a jsonrpc2 connection.
type ConnClient struct {
	conn jsonrpc2.Conn
}

// NewConnClient wraps conn. The caller must keep conn's reader running
// with conn.Go so that responses are delivered.
func NewConnClient(conn jsonrpc2.Conn) *ConnClient {
	return &ConnClient{conn: conn}
}

// Notify implements Client.
func (c *ConnClient) Notify(ctx context.Context, method string, params any) error {
	return c.conn.Notify(ctx, method, params)
}

// Call implements Client.
func (c *ConnClient) Call(ctx context.Context, method string, params, result any) error {
	_, err := c.conn.Call(ctx, method, params, result)
	return err
}
