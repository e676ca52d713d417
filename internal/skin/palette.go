package skin

import (
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mcskinprep/skintools/internal/regions"
)

// ColorFrequency is one palette entry: a color and how often it occurs
// among the opaque pixels of the selected regions.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // "#rrggbb", quantized
	Percentage float64 `json:"percentage"` // share of opaque pixels (0-100)
	Count      int     `json:"count"`      // opaque pixels with this color
}

// PaletteResult contains the dominant colors of the selected skin regions,
// most frequent first.
type PaletteResult struct {
	Colors       []ColorFrequency `json:"colors"`
	OpaquePixels int              `json:"opaque_pixels"`
}

// labMergeThreshold is the Lab-space distance under which two quantized
// colors are folded into the same palette entry.
const labMergeThreshold = 0.02

// RegionPalette extracts the count most frequent opaque colors from the
// selected regions.
//
// Selection follows the detector queries: bodyParts nil means all parts,
// layerIndex is 1, 2 or LayerBoth (anything else selects both layers),
// and out-of-bounds parts are skipped.
// Fully transparent pixels are ignored. Colors are quantized to 16-step
// buckets per channel and near-identical buckets are merged by their Lab
// distance, so anti-aliased shades collapse into one entry.
func (t *Toolkit) RegionPalette(img image.Image, bodyParts []regions.BodyPart, layerIndex, count int) *PaletteResult {
	layers := regions.Layers
	if layer, ok := regions.LayerFromIndex(layerIndex); ok {
		layers = []regions.Layer{layer}
	}
	if bodyParts == nil {
		bodyParts = regions.BodyParts
	}

	w, h := dimensions(img)
	counts := make(map[uint32]int)
	opaque := 0

	for _, layer := range layers {
		for _, bodyPart := range bodyParts {
			for _, part := range t.wide.Lookup(layer, bodyPart) {
				r := part.Coords
				if !r.In(w, h) {
					continue
				}
				for y := r.Top; y < r.Bottom; y++ {
					for x := r.Left; x < r.Right; x++ {
						pr, pg, pb, pa := img.At(x, y).RGBA()
						if pa == 0 {
							continue
						}
						opaque++
						// Quantize to 16-step buckets per channel.
						key := uint32(pr>>8)/16*16<<16 | uint32(pg>>8)/16*16<<8 | uint32(pb>>8)/16*16
						counts[key]++
					}
				}
			}
		}
	}

	entries := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c := colorful.Color{
			R: float64(key>>16&0xff) / 255.0,
			G: float64(key>>8&0xff) / 255.0,
			B: float64(key&0xff) / 255.0,
		}
		entries = append(entries, ColorFrequency{Hex: c.Hex(), Count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })

	merged := mergeByLabDistance(entries)
	if count > 0 && len(merged) > count {
		merged = merged[:count]
	}
	for i := range merged {
		if opaque > 0 {
			merged[i].Percentage = float64(merged[i].Count) / float64(opaque) * 100
		}
	}

	return &PaletteResult{Colors: merged, OpaquePixels: opaque}
}

// mergeByLabDistance folds entries that are perceptually identical after
// quantization into the more frequent entry. Input must be sorted by count
// descending; the order is preserved.
func mergeByLabDistance(entries []ColorFrequency) []ColorFrequency {
	merged := make([]ColorFrequency, 0, len(entries))
	for _, e := range entries {
		c, err := colorful.Hex(e.Hex)
		if err != nil {
			merged = append(merged, e)
			continue
		}
		folded := false
		for i := range merged {
			m, err := colorful.Hex(merged[i].Hex)
			if err != nil {
				continue
			}
			if c.DistanceLab(m) < labMergeThreshold {
				merged[i].Count += e.Count
				folded = true
				break
			}
		}
		if !folded {
			merged = append(merged, e)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Count > merged[j].Count })
	return merged
}
