package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_input").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "color_convert":
		return s.handleColorConvert(args)

	case "color_input":
		return s.handleColorInput(args)
	case "color_set_format":
		return s.handleColorSetFormat(args)
	case "color_current":
		return s.stateResult(), nil

	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_copy":
		return s.handleColorCopy(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// StateResult describes the session after a tool call.
type StateResult struct {
	Format colorspace.Format  `json:"format"`
	Input  string             `json:"input"`
	Color  colorspace.Display `json:"color"`
}

// InputResult is the color_input result. Accepted is false when the text was
// not valid for the current format; Color is then the unchanged prior color.
type InputResult struct {
	Accepted bool `json:"accepted"`
	StateResult
}

// CopyResult is the color_copy result.
type CopyResult struct {
	Field  string `json:"field"`
	Copied string `json:"copied"`
}

func (s *Server) stateResult() StateResult {
	return StateResult{
		Format: s.session.Format(),
		Input:  s.session.Input(),
		Color:  s.session.Display(),
	}
}

// === Conversion Handlers ===

type colorConvertArgs struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := colorspace.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	c, err := s.parser.ValidateAndConvert(a.Text, f)
	if err != nil {
		return nil, err
	}
	d := colorspace.DeriveDisplay(c)
	return &d, nil
}

// === Session Handlers ===

type colorInputArgs struct {
	Text string `json:"text"`
}

func (s *Server) handleColorInput(args json.RawMessage) (interface{}, error) {
	var a colorInputArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, ok := s.session.Submit(a.Text)
	if s.cfg.Debug {
		log.Printf("input %q as %s accepted=%v", a.Text, s.session.Format(), ok)
	}
	return &InputResult{Accepted: ok, StateResult: s.stateResult()}, nil
}

type colorSetFormatArgs struct {
	Format string `json:"format"`
}

func (s *Server) handleColorSetFormat(args json.RawMessage) (interface{}, error) {
	var a colorSetFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := colorspace.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	s.session.SetFormat(f)
	return s.stateResult(), nil
}

// === Output Handlers ===

type colorSwatchArgs struct {
	Hex     string `json:"hex"`
	Compare bool   `json:"compare"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.SwatchSize
	}
	if a.Height == 0 {
		a.Height = s.cfg.SwatchSize
	}

	d := s.session.Display()
	if a.Hex != "" {
		c, err := s.parser.ValidateAndConvert(a.Hex, colorspace.FormatHex)
		if err != nil {
			return nil, err
		}
		d = colorspace.DeriveDisplay(c)
	}

	return swatch.Encode(d, swatch.Options{
		Width:   a.Width,
		Height:  a.Height,
		Compare: a.Compare,
	})
}

type colorCopyArgs struct {
	Field string `json:"field"`
}

func (s *Server) handleColorCopy(args json.RawMessage) (interface{}, error) {
	var a colorCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	text, err := s.session.Copy(session.Field(a.Field))
	if err != nil {
		return nil, err
	}
	return &CopyResult{Field: a.Field, Copied: text}, nil
}
