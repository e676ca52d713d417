package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// skinInputSchema builds an input schema with the shared skin-source
// properties (path or image_base64) plus any tool-specific ones.
func skinInputSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Path to the skin image file (PNG, JPEG or GIF)",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded skin image, as an alternative to path",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// regionFilterProps are the shared region-selection properties of the
// detector and palette tools.
var regionFilterProps = map[string]interface{}{
	"regions": map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Body parts to inspect (head, body, right_arm, left_arm, right_leg, left_leg). Omit for all.",
	},
	"layer": map[string]interface{}{
		"type":        "integer",
		"description": "Layer to inspect: 1 (base) or 2 (overlay). Omit for both.",
	},
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "skin_info",
			Description: "Load a skin file and report its dimensions, layout (legacy 64x32 or modern 64x64), format and alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the skin image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "skin_expand",
			Description: "Convert a legacy 64x32 skin to the modern 64x64 layout. Left limbs receive copies of the right-side art; a 64x64 input passes through unchanged. Returns the result as base64 PNG.",
			InputSchema: skinInputSchema(nil),
		},
		{
			Name:        "skin_swap_layers",
			Description: "Exchange base (layer1) and overlay (layer2) content of a 64x64 skin. Set twice=true to swap twice, which clears pixels outside the tabled regions. Returns base64 PNG.",
			InputSchema: skinInputSchema(map[string]interface{}{
				"twice": map[string]interface{}{
					"type":        "boolean",
					"description": "Swap twice instead of once",
				},
			}),
		},
		{
			Name:        "skin_remove_layer",
			Description: "Blank one layer of a 64x64 skin, keeping the other layer in place. Returns base64 PNG.",
			InputSchema: skinInputSchema(map[string]interface{}{
				"layer": map[string]interface{}{
					"type":        "integer",
					"description": "Layer to remove: 1 (base) or 2 (overlay)",
				},
			}, "layer"),
		},
		{
			Name:        "skin_convert_type",
			Description: "Convert a 64x64 skin between wide (4px) and narrow (3px) arm conventions. Omit target to convert to the opposite of the detected type. Returns base64 PNG.",
			InputSchema: skinInputSchema(map[string]interface{}{
				"target": map[string]interface{}{
					"type":        "string",
					"description": "Target type: wide or narrow (regular/steve and slim/alex are accepted as aliases)",
				},
			}),
		},
		{
			Name:        "skin_detect_type",
			Description: "Classify a skin's arm convention (wide or narrow) from the alpha channel of the outer arm columns.",
			InputSchema: skinInputSchema(nil),
		},
		{
			Name:        "skin_has_pixels",
			Description: "Check whether the selected skin regions contain any non-transparent pixel.",
			InputSchema: skinInputSchema(regionFilterProps),
		},
		{
			Name:        "skin_has_transparency",
			Description: "Check whether the selected skin regions contain any fully transparent pixel.",
			InputSchema: skinInputSchema(regionFilterProps),
		},
		{
			Name:        "skin_region_palette",
			Description: "Extract the dominant opaque colors of the selected skin regions, most frequent first.",
			InputSchema: skinInputSchema(map[string]interface{}{
				"regions": regionFilterProps["regions"],
				"layer":   regionFilterProps["layer"],
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of colors to return (default 8)",
				},
			}),
		},
		{
			Name:        "skin_crop_part",
			Description: "Crop one named part rectangle from a skin and return it as base64 PNG, for close inspection.",
			InputSchema: skinInputSchema(map[string]interface{}{
				"layer": map[string]interface{}{
					"type":        "integer",
					"description": "Layer of the part: 1 or 2",
				},
				"body_part": map[string]interface{}{
					"type":        "string",
					"description": "Body part id (head, body, right_arm, left_arm, right_leg, left_leg)",
				},
				"part": map[string]interface{}{
					"type":        "integer",
					"description": "Part ordinal within the body part: 0 (top) or 1 (main)",
				},
			}, "layer", "body_part"),
		},
	}
}
