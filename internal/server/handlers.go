package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/mcskinprep/skintools/internal/imaging"
	"github.com/mcskinprep/skintools/internal/regions"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the
// specified tool. The response wraps the tool result in MCP's content
// format; execution errors return a JSON-RPC error with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "skin_info":
		return s.handleSkinInfo(args)
	case "skin_expand":
		return s.handleSkinExpand(args)
	case "skin_swap_layers":
		return s.handleSkinSwapLayers(args)
	case "skin_remove_layer":
		return s.handleSkinRemoveLayer(args)
	case "skin_convert_type":
		return s.handleSkinConvertType(args)
	case "skin_detect_type":
		return s.handleSkinDetectType(args)
	case "skin_has_pixels":
		return s.handleSkinHasPixels(args)
	case "skin_has_transparency":
		return s.handleSkinHasTransparency(args)
	case "skin_region_palette":
		return s.handleSkinRegionPalette(args)
	case "skin_crop_part":
		return s.handleSkinCropPart(args)
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
// On marshal failure an empty string is returned.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// skinSource is the shared image-input portion of the tool arguments:
// either a file path (cached) or an inline base64 payload.
type skinSource struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

// resolve loads the image the arguments refer to.
func (s *Server) resolve(src skinSource) (image.Image, error) {
	switch {
	case src.Path != "":
		return s.cache.Load(src.Path)
	case src.ImageBase64 != "":
		return imaging.DecodeBase64(src.ImageBase64)
	default:
		return nil, fmt.Errorf("either path or image_base64 is required")
	}
}

// regionFilter is the shared region-selection portion of the detector and
// palette arguments.
type regionFilter struct {
	Regions []string `json:"regions"`
	Layer   int      `json:"layer"`
}

// bodyParts maps the filter's region names onto body part ids, dropping
// unknown names. A nil result means "all body parts".
func (f regionFilter) bodyParts() []regions.BodyPart {
	if f.Regions == nil {
		return nil
	}
	known := make(map[regions.BodyPart]bool, len(regions.BodyParts))
	for _, p := range regions.BodyParts {
		known[p] = true
	}
	parts := make([]regions.BodyPart, 0, len(f.Regions))
	for _, name := range f.Regions {
		if p := regions.BodyPart(name); known[p] {
			parts = append(parts, p)
		}
	}
	return parts
}

type skinInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSkinInfo(args json.RawMessage) (interface{}, error) {
	var a skinInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadSkinInfo(s.cache, a.Path)
}

type skinExpandArgs struct {
	skinSource
}

func (s *Server) handleSkinExpand(args json.RawMessage) (interface{}, error) {
	var a skinExpandArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	out, err := s.tools.Expand(img)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePayload(out)
}

type skinSwapLayersArgs struct {
	skinSource
	Twice bool `json:"twice"`
}

func (s *Server) handleSkinSwapLayers(args json.RawMessage) (interface{}, error) {
	var a skinSwapLayersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	var out image.Image
	if a.Twice {
		out, err = s.tools.TwiceSwapLayers(img)
	} else {
		out, err = s.tools.SwapLayers(img)
	}
	if err != nil {
		return nil, err
	}
	return imaging.EncodePayload(out)
}

type skinRemoveLayerArgs struct {
	skinSource
	Layer int `json:"layer"`
}

func (s *Server) handleSkinRemoveLayer(args json.RawMessage) (interface{}, error) {
	var a skinRemoveLayerArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	out, err := s.tools.RemoveLayer(img, a.Layer)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePayload(out)
}

type skinConvertTypeArgs struct {
	skinSource
	Target string `json:"target"`
}

func (s *Server) handleSkinConvertType(args json.RawMessage) (interface{}, error) {
	var a skinConvertTypeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	out, err := s.tools.ConvertSkinType(img, a.Target)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePayload(out)
}

type skinDetectTypeArgs struct {
	skinSource
}

// detectTypeResult is the skin_detect_type payload.
type detectTypeResult struct {
	SkinType string `json:"skin_type"`
}

func (s *Server) handleSkinDetectType(args json.RawMessage) (interface{}, error) {
	var a skinDetectTypeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	return &detectTypeResult{SkinType: s.tools.DetectSkinType(img).String()}, nil
}

type regionQueryArgs struct {
	skinSource
	regionFilter
}

func (s *Server) handleSkinHasPixels(args json.RawMessage) (interface{}, error) {
	var a regionQueryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		"has_pixels": s.tools.HasPixels(img, a.bodyParts(), a.Layer),
	}, nil
}

func (s *Server) handleSkinHasTransparency(args json.RawMessage) (interface{}, error) {
	var a regionQueryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		"has_transparency": s.tools.HasTransparency(img, a.bodyParts(), a.Layer),
	}, nil
}

type regionPaletteArgs struct {
	skinSource
	regionFilter
	Count int `json:"count"`
}

func (s *Server) handleSkinRegionPalette(args json.RawMessage) (interface{}, error) {
	var a regionPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	return s.tools.RegionPalette(img, a.bodyParts(), a.Layer, a.Count), nil
}

type cropPartArgs struct {
	skinSource
	Layer    int    `json:"layer"`
	BodyPart string `json:"body_part"`
	Part     int    `json:"part"`
}

func (s *Server) handleSkinCropPart(args json.RawMessage) (interface{}, error) {
	var a cropPartArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.resolve(a.skinSource)
	if err != nil {
		return nil, err
	}
	out, err := s.tools.CropPart(img, a.Layer, regions.BodyPart(a.BodyPart), a.Part)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePayload(out)
}
