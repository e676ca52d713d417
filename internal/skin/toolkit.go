package skin

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/mcskinprep/skintools/internal/regions"
)

// Canvas dimensions of the two supported skin layouts.
const (
	SkinWidth    = 64
	LegacyHeight = 32
	ModernHeight = 64
)

// Toolkit bundles the region tables the transformations operate on.
//
// The wide table is the active table for layout operations; the narrow
// variant is derived from it once and used by the arm-width conversion.
// A Toolkit is immutable after construction.
type Toolkit struct {
	wide   regions.Table
	narrow regions.Table
}

// NewToolkit returns a Toolkit backed by the canonical region tables.
func NewToolkit() *Toolkit {
	return &Toolkit{wide: regions.Default(), narrow: regions.Narrow()}
}

// NewToolkitWithTable returns a Toolkit backed by a custom wide-arm table,
// for callers that substitute their own region layout. The narrow variant
// is derived from the given table.
func NewToolkitWithTable(table regions.Table) *Toolkit {
	return &Toolkit{wide: table, narrow: regions.DeriveNarrow(table)}
}

// Table returns the active (wide-arm) region table.
func (t *Toolkit) Table() regions.Table { return t.wide }

// newCanvas allocates a transparent 64x64 output canvas.
func newCanvas() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, SkinWidth, ModernHeight))
}

// pasteRegion crops srcRect from src and pastes it at dstRect on dst,
// replacing destination pixels (including alpha) rather than blending.
func pasteRegion(dst *image.NRGBA, src image.Image, srcRect, dstRect regions.Rect) {
	part := imaging.Crop(src, srcRect.Bounds())
	draw.Draw(dst, dstRect.Bounds(), part, image.Point{}, draw.Src)
}

// dimensions returns the pixel size of an image.
func dimensions(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Expand converts a legacy 64x32 skin to the modern 64x64 layout.
//
// head, body, right_arm and right_leg (layer1) plus the head overlay
// (layer2) are copied at their original coordinates. The left arm and leg
// have no independent art in the legacy format; their layer1 regions
// receive verbatim copies of the matching right-side parts. All remaining
// regions stay transparent.
//
// A 64x64 input is already modern and passes through unchanged. Any other
// size yields a DimensionError.
func (t *Toolkit) Expand(img image.Image) (image.Image, error) {
	w, h := dimensions(img)
	if w == SkinWidth && h == ModernHeight {
		return img, nil
	}
	if w != SkinWidth || h != LegacyHeight {
		return nil, &DimensionError{Op: "expand", Width: w, Height: h, WantWidth: SkinWidth, WantHeight: LegacyHeight}
	}

	out := newCanvas()

	for _, bodyPart := range []regions.BodyPart{regions.Head, regions.Body, regions.RightArm, regions.RightLeg} {
		for _, part := range t.wide.Lookup(regions.Layer1, bodyPart) {
			pasteRegion(out, img, part.Coords, part.Coords)
		}
	}
	for _, part := range t.wide.Lookup(regions.Layer2, regions.Head) {
		pasteRegion(out, img, part.Coords, part.Coords)
	}

	// The legacy format is visually symmetric: left limbs are unflipped
	// copies of the right-side pixels.
	mirrored := map[regions.BodyPart]regions.BodyPart{
		regions.LeftArm: regions.RightArm,
		regions.LeftLeg: regions.RightLeg,
	}
	for target, source := range mirrored {
		sourceParts := t.wide.Lookup(regions.Layer1, source)
		targetParts := t.wide.Lookup(regions.Layer1, target)
		for i, src := range sourceParts {
			if i >= len(targetParts) {
				break
			}
			pasteRegion(out, img, src.Coords, targetParts[i].Coords)
		}
	}

	return out, nil
}

// SwapLayers exchanges layer1 and layer2 content of a 64x64 skin.
//
// Each part's pixels move to the rectangle of the part with the same body
// part and ordinal position in the opposite layer. The output canvas starts
// transparent, so pixels outside every tabled region are dropped.
func (t *Toolkit) SwapLayers(img image.Image) (image.Image, error) {
	if err := requireModern("swap_layers", img); err != nil {
		return nil, err
	}

	out := newCanvas()
	for _, layer := range regions.Layers {
		targetLayer := layer.Other()
		for _, bodyPart := range regions.BodyParts {
			sourceParts := t.wide.Lookup(layer, bodyPart)
			targetParts := t.wide.Lookup(targetLayer, bodyPart)
			for i, src := range sourceParts {
				if i >= len(targetParts) {
					break
				}
				pasteRegion(out, img, src.Coords, targetParts[i].Coords)
			}
		}
	}
	return out, nil
}

// TwiceSwapLayers applies SwapLayers twice. The content returns to its
// original coordinates while anything outside the tabled regions is
// cleared.
func (t *Toolkit) TwiceSwapLayers(img image.Image) (image.Image, error) {
	once, err := t.SwapLayers(img)
	if err != nil {
		return nil, err
	}
	return t.SwapLayers(once)
}

// RemoveLayer blanks one layer of a 64x64 skin, copying every region of the
// other layer through at identical coordinates.
//
// layerIndex must be 1 or 2; anything else returns ErrInvalidLayerIndex and
// no image.
func (t *Toolkit) RemoveLayer(img image.Image, layerIndex int) (image.Image, error) {
	removed, ok := regions.LayerFromIndex(layerIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayerIndex, layerIndex)
	}
	if err := requireModern("remove_layer", img); err != nil {
		return nil, err
	}

	keep := removed.Other()
	out := newCanvas()
	for _, bodyPart := range regions.BodyParts {
		for _, part := range t.wide.Lookup(keep, bodyPart) {
			pasteRegion(out, img, part.Coords, part.Coords)
		}
	}
	return out, nil
}

// CropPart extracts one named part's pixels. ordinal selects the part
// within the body part's ordered list (0-based). The part rectangle must
// lie within the image bounds.
func (t *Toolkit) CropPart(img image.Image, layerIndex int, bodyPart regions.BodyPart, ordinal int) (image.Image, error) {
	layer, ok := regions.LayerFromIndex(layerIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayerIndex, layerIndex)
	}
	parts := t.wide.Lookup(layer, bodyPart)
	if parts == nil {
		return nil, fmt.Errorf("unknown body part: %q", bodyPart)
	}
	if ordinal < 0 || ordinal >= len(parts) {
		return nil, fmt.Errorf("part index %d out of range for %s (0-%d)", ordinal, bodyPart, len(parts)-1)
	}
	r := parts[ordinal].Coords
	w, h := dimensions(img)
	if !r.In(w, h) {
		return nil, fmt.Errorf("part %s [%d,%d,%d,%d] outside image bounds %dx%d",
			parts[ordinal].Name, r.Left, r.Top, r.Right, r.Bottom, w, h)
	}
	return imaging.Crop(img, r.Bounds()), nil
}

// requireModern validates that an image is 64x64.
func requireModern(op string, img image.Image) error {
	w, h := dimensions(img)
	if w != SkinWidth || h != ModernHeight {
		return &DimensionError{Op: op, Width: w, Height: h, WantWidth: SkinWidth, WantHeight: ModernHeight}
	}
	return nil
}
