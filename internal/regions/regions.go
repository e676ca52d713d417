package regions

import (
	"encoding/json"
	"fmt"
	"image"
	"sync"
)

// Rect is a rectangular part boundary in pixel coordinates.
//
// (Left, Top) is the top-left corner (inclusive) and (Right, Bottom) the
// bottom-right corner (exclusive), so Width = Right-Left and
// Height = Bottom-Top.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Bounds converts the rectangle to a standard image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Dx returns the rectangle width in pixels.
func (r Rect) Dx() int { return r.Right - r.Left }

// Dy returns the rectangle height in pixels.
func (r Rect) Dy() int { return r.Bottom - r.Top }

// In reports whether the rectangle lies entirely within a width x height
// image.
func (r Rect) In(width, height int) bool {
	return r.Left >= 0 && r.Top >= 0 && r.Right <= width && r.Bottom <= height
}

// MarshalJSON encodes the rectangle as the [left, top, right, bottom]
// array used by the original region tables.
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.Left, r.Top, r.Right, r.Bottom})
}

// UnmarshalJSON decodes a [left, top, right, bottom] array.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var coords [4]int
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("invalid coords: %w", err)
	}
	r.Left, r.Top, r.Right, r.Bottom = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// Layer identifies one of the two stacked texture planes.
type Layer string

const (
	Layer1 Layer = "layer1" // base skin
	Layer2 Layer = "layer2" // overlay
)

// Layers lists both layers in table order.
var Layers = []Layer{Layer1, Layer2}

// Other returns the opposite layer.
func (l Layer) Other() Layer {
	if l == Layer1 {
		return Layer2
	}
	return Layer1
}

// LayerFromIndex maps the user-facing indices 1 and 2 to their layers.
func LayerFromIndex(index int) (Layer, bool) {
	switch index {
	case 1:
		return Layer1, true
	case 2:
		return Layer2, true
	default:
		return "", false
	}
}

// BodyPart identifies one of the six body-part regions.
type BodyPart string

const (
	Head     BodyPart = "head"
	Body     BodyPart = "body"
	RightArm BodyPart = "right_arm"
	LeftArm  BodyPart = "left_arm"
	RightLeg BodyPart = "right_leg"
	LeftLeg  BodyPart = "left_leg"
)

// BodyParts lists all body parts in canonical table order.
var BodyParts = []BodyPart{Head, Body, RightArm, LeftArm, RightLeg, LeftLeg}

// ArmParts are the body parts whose rectangles differ between the wide and
// narrow conventions.
var ArmParts = []BodyPart{RightArm, LeftArm}

// Part is one named rectangular sub-region of the texture.
//
// The name encodes body part, sub-index and layer (e.g. "head1_layer1") and
// is carried for table serialization and diagnostics; operations key parts
// structurally by (layer, body part, ordinal), not by name.
type Part struct {
	Name   string `json:"name"`
	Coords Rect   `json:"coords"`
}

// Table maps layer id -> body part id -> ordered part list.
//
// A Table is immutable configuration: construct (or deserialize) it once and
// share it by reference.
type Table map[Layer]map[BodyPart][]Part

// Lookup returns the ordered parts for one body part within one layer.
// The result is nil if the table has no entry for the pair.
func (t Table) Lookup(layer Layer, part BodyPart) []Part {
	return t[layer][part]
}

// wide is the canonical wide-arm table shared by every caller of Default.
var wide = Table{
	Layer1: {
		Head: {
			{Name: "head1_layer1", Coords: Rect{8, 0, 24, 8}},
			{Name: "head2_layer1", Coords: Rect{0, 8, 32, 16}},
		},
		Body: {
			{Name: "body1_layer1", Coords: Rect{20, 16, 36, 20}},
			{Name: "body2_layer1", Coords: Rect{16, 20, 40, 32}},
		},
		RightArm: {
			{Name: "right_arm1_layer1", Coords: Rect{44, 16, 52, 20}},
			{Name: "right_arm2_layer1", Coords: Rect{40, 20, 56, 32}},
		},
		LeftArm: {
			{Name: "left_arm1_layer1", Coords: Rect{36, 48, 44, 52}},
			{Name: "left_arm2_layer1", Coords: Rect{32, 52, 48, 64}},
		},
		RightLeg: {
			{Name: "right_leg1_layer1", Coords: Rect{4, 16, 12, 20}},
			{Name: "right_leg2_layer1", Coords: Rect{0, 20, 16, 32}},
		},
		LeftLeg: {
			{Name: "left_leg1_layer1", Coords: Rect{20, 48, 28, 52}},
			{Name: "left_leg2_layer1", Coords: Rect{16, 52, 32, 64}},
		},
	},
	Layer2: {
		Head: {
			{Name: "head1_layer2", Coords: Rect{40, 0, 56, 8}},
			{Name: "head2_layer2", Coords: Rect{32, 8, 64, 16}},
		},
		Body: {
			{Name: "body1_layer2", Coords: Rect{20, 32, 36, 36}},
			{Name: "body2_layer2", Coords: Rect{16, 36, 40, 48}},
		},
		RightArm: {
			{Name: "right_arm1_layer2", Coords: Rect{44, 32, 52, 36}},
			{Name: "right_arm2_layer2", Coords: Rect{40, 36, 56, 48}},
		},
		LeftArm: {
			{Name: "left_arm1_layer2", Coords: Rect{52, 48, 60, 52}},
			{Name: "left_arm2_layer2", Coords: Rect{48, 52, 64, 64}},
		},
		RightLeg: {
			{Name: "right_leg1_layer2", Coords: Rect{4, 32, 12, 36}},
			{Name: "right_leg2_layer2", Coords: Rect{0, 36, 16, 48}},
		},
		LeftLeg: {
			{Name: "left_leg1_layer2", Coords: Rect{4, 48, 12, 52}},
			{Name: "left_leg2_layer2", Coords: Rect{0, 52, 16, 64}},
		},
	},
}

// Default returns the canonical wide-arm region table.
func Default() Table { return wide }

var (
	narrowOnce sync.Once
	narrow     Table
)

// Narrow returns the canonical narrow-arm table, derived from Default on
// first use and cached.
func Narrow() Table {
	narrowOnce.Do(func() {
		narrow = DeriveNarrow(wide)
	})
	return narrow
}

// DeriveNarrow builds the narrow-arm variant of a wide-arm table: every arm
// part's right edge moves 2 pixels left, all other parts are copied
// unchanged.
func DeriveNarrow(t Table) Table {
	adjustable := make(map[BodyPart]bool, len(ArmParts))
	for _, p := range ArmParts {
		adjustable[p] = true
	}

	out := make(Table, len(t))
	for layer, parts := range t {
		out[layer] = make(map[BodyPart][]Part, len(parts))
		for bodyPart, list := range parts {
			copied := make([]Part, len(list))
			copy(copied, list)
			if adjustable[bodyPart] {
				for i := range copied {
					copied[i].Coords.Right -= 2
				}
			}
			out[layer][bodyPart] = copied
		}
	}
	return out
}
