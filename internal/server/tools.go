package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var formatProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"hex", "rgb", "ycbcr"},
	"description": "Input format: hex (#RRGGBB), rgb (r, g, b; 0-255) or ycbcr (y, cb, cr; BT.601 limited range, Y 16-235, Cb/Cr 16-240)",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Stateless conversion
		{
			Name:        "color_convert",
			Description: "Parse a color written as HEX, RGB or YCbCr and return it in all three representations. Fails if the text is not valid for the given format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "The color text, e.g. \"#3B82F6\", \"59, 130, 246\" or \"122, 198, 83\"",
					},
					"format": formatProperty,
				},
				"required": []string{"text", "format"},
			},
		},

		// Session
		{
			Name:        "color_input",
			Description: "Submit text in the session's current input format. Valid input becomes the current color; invalid input is ignored and the current color is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Raw input text",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "color_set_format",
			Description: "Select the session's input format. Clears the raw input text; the current color is unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": formatProperty,
				},
				"required": []string{"format"},
			},
		},
		{
			Name:        "color_current",
			Description: "Return the session state: input format, raw input text and the current color in HEX, RGB and YCbCr.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Output
		{
			Name:        "color_swatch",
			Description: "Render a color swatch as base64-encoded PNG. Uses the current session color unless a hex color is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Optional color to render instead of the current one (#RRGGBB)",
					},
					"compare": map[string]interface{}{
						"type":        "boolean",
						"description": "Split the swatch: left is the color, right is its RGB->YCbCr->RGB round trip. Default false",
						"default":     false,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels (16-2048). Defaults to the configured swatch size",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels (16-2048). Defaults to the configured swatch size",
					},
				},
			},
		},
		{
			Name:        "color_copy",
			Description: "Copy one representation of the current color to the clipboard (terminal OSC 52). Returns the copied text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"field": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hex", "rgb", "ycbcr"},
						"description": "Which representation to copy",
					},
				},
				"required": []string{"field"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
