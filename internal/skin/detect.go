package skin

import (
	"image"

	"github.com/mcskinprep/skintools/internal/regions"
)

// LayerBoth selects both layers in the detector queries.
const LayerBoth = 0

// HasPixels reports whether any selected region contains a pixel with
// alpha > 0.
//
// bodyParts nil means all body parts; layerIndex is 1, 2, or LayerBoth
// (any other value also selects both layers, mirroring LayerBoth).
// Parts whose rectangle falls outside the image bounds are skipped, so
// undersized custom tables and legacy 64x32 inputs are tolerated. The scan
// short-circuits on the first matching pixel.
func (t *Toolkit) HasPixels(img image.Image, bodyParts []regions.BodyPart, layerIndex int) bool {
	return t.scanRegions(img, bodyParts, layerIndex, func(alpha uint32) bool {
		return alpha > 0
	})
}

// HasTransparency reports whether any selected region contains a fully
// transparent pixel (alpha == 0). Selection and bounds handling follow
// HasPixels.
func (t *Toolkit) HasTransparency(img image.Image, bodyParts []regions.BodyPart, layerIndex int) bool {
	return t.scanRegions(img, bodyParts, layerIndex, func(alpha uint32) bool {
		return alpha == 0
	})
}

func (t *Toolkit) scanRegions(img image.Image, bodyParts []regions.BodyPart, layerIndex int, match func(alpha uint32) bool) bool {
	layers := regions.Layers
	if layer, ok := regions.LayerFromIndex(layerIndex); ok {
		layers = []regions.Layer{layer}
	}
	if bodyParts == nil {
		bodyParts = regions.BodyParts
	}

	w, h := dimensions(img)
	for _, layer := range layers {
		for _, bodyPart := range bodyParts {
			for _, part := range t.wide.Lookup(layer, bodyPart) {
				r := part.Coords
				if !r.In(w, h) {
					continue
				}
				for y := r.Top; y < r.Bottom; y++ {
					for x := r.Left; x < r.Right; x++ {
						if _, _, _, a := img.At(x, y).RGBA(); match(a) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}
