// Package server implements the MCP (Model Context Protocol) server for color
// conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes HEX / RGB / YCbCr
// conversion, a single input session and swatch rendering to MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_convert: Parse text in a given format, return all representations
//
// Session:
//   - color_input: Submit text in the current input format
//   - color_set_format: Switch input format (clears input, keeps color)
//   - color_current: Report format, input and current color
//
// Output:
//   - color_swatch: Render a PNG swatch
//   - color_copy: Copy one representation to the clipboard
//
// # Session
//
// The server owns exactly one session. Requests are processed one at a time
// in arrival order, so the session needs no locking. color_input never fails
// on bad color text: the result reports accepted=false and the prior color.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
