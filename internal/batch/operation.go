package batch

import (
	"fmt"
	"image"

	"github.com/mcskinprep/skintools/internal/skin"
)

// OpKind enumerates the skin operations a run can perform.
type OpKind int

const (
	OpExpand OpKind = iota
	OpSwapLayers
	OpTwiceSwap
	OpRemoveLayer
	OpConvertType
)

// Operation is one skin transformation together with its parameters. It
// carries the canonical output-filename suffix, so single-file and batch
// drivers name results the same way.
type Operation struct {
	Kind       OpKind
	LayerIndex int    // OpRemoveLayer only
	TargetType string // OpConvertType only; empty means auto-detect
}

// Expand converts legacy 64x32 skins to the modern 64x64 layout.
func Expand() Operation { return Operation{Kind: OpExpand} }

// SwapLayers exchanges layer1 and layer2 content.
func SwapLayers() Operation { return Operation{Kind: OpSwapLayers} }

// TwiceSwap swaps layers twice, clearing pixels outside the tabled regions.
func TwiceSwap() Operation { return Operation{Kind: OpTwiceSwap} }

// RemoveLayer blanks the given layer (1 or 2).
func RemoveLayer(index int) Operation {
	return Operation{Kind: OpRemoveLayer, LayerIndex: index}
}

// ConvertType converts between arm-width conventions. An empty target
// converts to the opposite of the detected type.
func ConvertType(target string) Operation {
	return Operation{Kind: OpConvertType, TargetType: target}
}

// Suffix returns the output-filename suffix for the operation.
func (op Operation) Suffix() string {
	switch op.Kind {
	case OpExpand:
		return "_64x64"
	case OpSwapLayers:
		return "_swap"
	case OpTwiceSwap:
		return "_swap_swap"
	case OpRemoveLayer:
		return fmt.Sprintf("_rm_layer%d", op.LayerIndex)
	case OpConvertType:
		if op.TargetType != "" {
			return "_" + op.TargetType
		}
		return "_converted"
	default:
		return "_out"
	}
}

// Name returns a human-readable operation name for logs.
func (op Operation) Name() string {
	switch op.Kind {
	case OpExpand:
		return "expand"
	case OpSwapLayers:
		return "swap-layers"
	case OpTwiceSwap:
		return "twice-swap"
	case OpRemoveLayer:
		return fmt.Sprintf("remove-layer %d", op.LayerIndex)
	case OpConvertType:
		if op.TargetType != "" {
			return "convert-type " + op.TargetType
		}
		return "convert-type auto"
	default:
		return "unknown"
	}
}

// Apply runs the operation on a decoded image.
func (op Operation) Apply(tools *skin.Toolkit, img image.Image) (image.Image, error) {
	switch op.Kind {
	case OpExpand:
		return tools.Expand(img)
	case OpSwapLayers:
		return tools.SwapLayers(img)
	case OpTwiceSwap:
		return tools.TwiceSwapLayers(img)
	case OpRemoveLayer:
		return tools.RemoveLayer(img, op.LayerIndex)
	case OpConvertType:
		return tools.ConvertSkinType(img, op.TargetType)
	default:
		return nil, fmt.Errorf("unknown operation kind %d", op.Kind)
	}
}
