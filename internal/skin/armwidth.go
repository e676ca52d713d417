package skin

import (
	"image"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/mcskinprep/skintools/internal/regions"
)

// SkinType is the arm-width convention of a skin.
type SkinType int

const (
	// Wide is the classic 4-pixel-arm convention ("Steve").
	Wide SkinType = iota
	// Narrow is the slim 3-pixel-arm convention ("Alex").
	Narrow
)

func (s SkinType) String() string {
	if s == Narrow {
		return "narrow"
	}
	return "wide"
}

// Opposite returns the other convention.
func (s SkinType) Opposite() SkinType {
	if s == Wide {
		return Narrow
	}
	return Wide
}

// ParseSkinType resolves a type token. The canonical tokens are "wide" and
// "narrow"; the original tool's spellings ("regular"/"steve" and
// "slim"/"alex") are accepted as aliases.
func ParseSkinType(token string) (SkinType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "wide", "regular", "steve":
		return Wide, nil
	case "narrow", "slim", "alex":
		return Narrow, nil
	default:
		return Wide, &InvalidTypeError{Token: token}
	}
}

// DetectSkinType classifies a skin's arm convention from its alpha channel.
//
// Only the rightmost 2 columns of each wide-table arm rectangle are
// inspected, across both arms and both layers. Any pixel there with
// alpha > 0 means the arm art extends to full width: the skin is Wide.
// A conforming Narrow skin leaves those marginal columns fully transparent.
func (t *Toolkit) DetectSkinType(img image.Image) SkinType {
	bounds := img.Bounds()
	for _, arm := range regions.ArmParts {
		for _, layer := range regions.Layers {
			for _, part := range t.wide.Lookup(layer, arm) {
				r := part.Coords
				for x := r.Right - 2; x < r.Right; x++ {
					for y := r.Top; y < r.Bottom; y++ {
						if !(image.Point{x, y}.In(bounds)) {
							continue
						}
						if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
							return Wide
						}
					}
				}
			}
		}
	}
	return Narrow
}

// ConvertSkinType converts a 64x64 skin between the wide and narrow arm
// conventions.
//
// An empty target token means "the opposite of the detected type". A
// non-empty token must parse to a canonical type; when the skin already has
// the target type the input is returned unchanged.
func (t *Toolkit) ConvertSkinType(img image.Image, target string) (image.Image, error) {
	if err := requireModern("convert_skin_type", img); err != nil {
		return nil, err
	}
	if target == "" {
		return t.ConvertTo(img, t.DetectSkinType(img).Opposite())
	}
	parsed, err := ParseSkinType(target)
	if err != nil {
		return nil, err
	}
	return t.ConvertTo(img, parsed)
}

// ConvertTo converts a 64x64 skin to a specific arm convention. If the skin
// already matches, the input is returned without allocation.
func (t *Toolkit) ConvertTo(img image.Image, target SkinType) (image.Image, error) {
	if err := requireModern("convert_skin_type", img); err != nil {
		return nil, err
	}
	if t.DetectSkinType(img) == target {
		return img, nil
	}
	if target == Narrow {
		return t.wideToNarrow(img), nil
	}
	return t.narrowToWide(img), nil
}

// Column edits for the arm-width conversion, per arm side and part ordinal.
// The pixel offsets are the original tool's constants: which 2 columns each
// direction drops or duplicates within a part's pixel grid.
var (
	deleteColumns = map[regions.BodyPart][][]int{
		regions.RightArm: {{2, 6}, {6, 13}},
		regions.LeftArm:  {{1, 5}, {5, 14}},
	}
	// Insert positions are applied in the order listed; the descending
	// order keeps later positions unaffected by earlier insertions.
	insertColumns = map[regions.BodyPart][][]int{
		regions.RightArm: {{4, 1}, {12, 5}},
		regions.LeftArm:  {{4, 1}, {12, 5}},
	}
)

// wideToNarrow rebuilds the skin with the 2 surplus columns deleted from
// every arm part. Non-arm regions are copied through unchanged.
func (t *Toolkit) wideToNarrow(img image.Image) image.Image {
	out := t.copyNonArmRegions(img, t.wide)

	for _, layer := range regions.Layers {
		for _, arm := range regions.ArmParts {
			wideParts := t.wide.Lookup(layer, arm)
			narrowParts := t.narrow.Lookup(layer, arm)
			for i, part := range wideParts {
				grid := imaging.Crop(img, part.Coords.Bounds())
				trimmed := dropColumns(grid, deleteColumns[arm][i])
				pasteGrid(out, trimmed, narrowParts[i].Coords)
			}
		}
	}
	return out
}

// narrowToWide rebuilds the skin with 2 duplicated columns inserted into
// every arm part, restoring the wide width.
func (t *Toolkit) narrowToWide(img image.Image) image.Image {
	out := t.copyNonArmRegions(img, t.wide)

	for _, layer := range regions.Layers {
		for _, arm := range regions.ArmParts {
			narrowParts := t.narrow.Lookup(layer, arm)
			wideParts := t.wide.Lookup(layer, arm)
			for i, part := range narrowParts {
				grid := imaging.Crop(img, part.Coords.Bounds())
				for _, pos := range insertColumns[arm][i] {
					grid = duplicateColumn(grid, pos)
				}
				pasteGrid(out, grid, wideParts[i].Coords)
			}
		}
	}
	return out
}

// copyNonArmRegions starts an output canvas with every non-arm region of
// the source copied at identical coordinates.
func (t *Toolkit) copyNonArmRegions(img image.Image, table regions.Table) *image.NRGBA {
	arm := map[regions.BodyPart]bool{regions.RightArm: true, regions.LeftArm: true}
	out := newCanvas()
	for _, layer := range regions.Layers {
		for _, bodyPart := range regions.BodyParts {
			if arm[bodyPart] {
				continue
			}
			for _, part := range table.Lookup(layer, bodyPart) {
				pasteRegion(out, img, part.Coords, part.Coords)
			}
		}
	}
	return out
}

// pasteGrid pastes an already-cropped pixel grid at the top-left corner of
// a target rectangle.
func pasteGrid(dst *image.NRGBA, grid *image.NRGBA, at regions.Rect) {
	target := image.Rect(at.Left, at.Top, at.Left+grid.Bounds().Dx(), at.Top+grid.Bounds().Dy())
	draw.Draw(dst, target, grid, image.Point{}, draw.Src)
}

// dropColumns returns a copy of grid with the given x columns removed.
func dropColumns(grid *image.NRGBA, cols []int) *image.NRGBA {
	drop := make(map[int]bool, len(cols))
	for _, c := range cols {
		drop[c] = true
	}

	w, h := grid.Bounds().Dx(), grid.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w-len(cols), h))
	outX := 0
	for x := 0; x < w; x++ {
		if drop[x] {
			continue
		}
		copyColumn(out, outX, grid, x, h)
		outX++
	}
	return out
}

// duplicateColumn returns a copy of grid one column wider, with the column
// at pos duplicated (the copy is inserted before pos).
func duplicateColumn(grid *image.NRGBA, pos int) *image.NRGBA {
	w, h := grid.Bounds().Dx(), grid.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w+1, h))
	for x := 0; x < pos; x++ {
		copyColumn(out, x, grid, x, h)
	}
	copyColumn(out, pos, grid, pos, h)
	for x := pos; x < w; x++ {
		copyColumn(out, x+1, grid, x, h)
	}
	return out
}

// copyColumn copies one pixel column between NRGBA grids.
func copyColumn(dst *image.NRGBA, dstX int, src *image.NRGBA, srcX, height int) {
	for y := 0; y < height; y++ {
		dst.SetNRGBA(dstX, y, src.NRGBAAt(srcX, y))
	}
}
