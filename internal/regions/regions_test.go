package regions

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefault_KnownCoordinates(t *testing.T) {
	table := Default()

	tests := []struct {
		layer    Layer
		bodyPart BodyPart
		ordinal  int
		name     string
		coords   Rect
	}{
		{Layer1, Head, 0, "head1_layer1", Rect{8, 0, 24, 8}},
		{Layer1, Head, 1, "head2_layer1", Rect{0, 8, 32, 16}},
		{Layer1, RightArm, 1, "right_arm2_layer1", Rect{40, 20, 56, 32}},
		{Layer1, LeftArm, 1, "left_arm2_layer1", Rect{32, 52, 48, 64}},
		{Layer2, Head, 0, "head1_layer2", Rect{40, 0, 56, 8}},
		{Layer2, LeftLeg, 1, "left_leg2_layer2", Rect{0, 52, 16, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := table.Lookup(tt.layer, tt.bodyPart)
			if len(parts) != 2 {
				t.Fatalf("Lookup(%s, %s): got %d parts, want 2", tt.layer, tt.bodyPart, len(parts))
			}
			part := parts[tt.ordinal]
			if part.Name != tt.name {
				t.Errorf("name: got %s, want %s", part.Name, tt.name)
			}
			if part.Coords != tt.coords {
				t.Errorf("coords: got %+v, want %+v", part.Coords, tt.coords)
			}
		})
	}
}

func TestDefault_AllRectsValid(t *testing.T) {
	for _, layer := range Layers {
		for _, bodyPart := range BodyParts {
			for _, part := range Default().Lookup(layer, bodyPart) {
				r := part.Coords
				if r.Left >= r.Right || r.Top >= r.Bottom {
					t.Errorf("%s: degenerate rect %+v", part.Name, r)
				}
				if !r.In(64, 64) {
					t.Errorf("%s: rect %+v outside 64x64", part.Name, r)
				}
			}
		}
	}
}

func TestNarrow_ArmRightEdgesShrink(t *testing.T) {
	wide := Default()
	narrow := Narrow()

	for _, layer := range Layers {
		for _, bodyPart := range BodyParts {
			wideParts := wide.Lookup(layer, bodyPart)
			narrowParts := narrow.Lookup(layer, bodyPart)
			if len(wideParts) != len(narrowParts) {
				t.Fatalf("%s/%s: part count mismatch", layer, bodyPart)
			}
			isArm := bodyPart == RightArm || bodyPart == LeftArm
			for i := range wideParts {
				want := wideParts[i].Coords
				if isArm {
					want.Right -= 2
				}
				if narrowParts[i].Coords != want {
					t.Errorf("%s: got %+v, want %+v", narrowParts[i].Name, narrowParts[i].Coords, want)
				}
			}
		}
	}
}

func TestNarrow_DoesNotMutateDefault(t *testing.T) {
	_ = Narrow()
	got := Default().Lookup(Layer1, RightArm)[1].Coords
	if got != (Rect{40, 20, 56, 32}) {
		t.Errorf("default table changed by narrow derivation: %+v", got)
	}
}

func TestNarrow_Cached(t *testing.T) {
	a := Narrow()
	b := Narrow()
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Error("Narrow() should return the same cached table")
	}
}

func TestRect_JSONArrayForm(t *testing.T) {
	r := Rect{8, 0, 24, 8}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[8,0,24,8]" {
		t.Errorf("got %s, want [8,0,24,8]", data)
	}

	var back Rect
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != r {
		t.Errorf("round trip: got %+v, want %+v", back, r)
	}
}

func TestTable_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Table
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, Default()) {
		t.Error("table changed across JSON round trip")
	}
}

func TestTable_UnmarshalOriginalShape(t *testing.T) {
	raw := `{
		"layer1": {
			"head": [
				{"name": "head1_layer1", "coords": [8, 0, 24, 8]}
			]
		}
	}`
	var table Table
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	parts := table.Lookup(Layer1, Head)
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(parts))
	}
	if parts[0].Coords != (Rect{8, 0, 24, 8}) {
		t.Errorf("coords: got %+v", parts[0].Coords)
	}
}

func TestLayerFromIndex(t *testing.T) {
	tests := []struct {
		index int
		want  Layer
		ok    bool
	}{
		{1, Layer1, true},
		{2, Layer2, true},
		{0, "", false},
		{3, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := LayerFromIndex(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LayerFromIndex(%d): got (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLayer_Other(t *testing.T) {
	if Layer1.Other() != Layer2 || Layer2.Other() != Layer1 {
		t.Error("Other() should flip between layers")
	}
}

func TestRect_In(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		w, h int
		want bool
	}{
		{"inside", Rect{0, 0, 64, 32}, 64, 32, true},
		{"exact fit", Rect{48, 52, 64, 64}, 64, 64, true},
		{"right overflow", Rect{0, 36, 16, 48}, 64, 32, false},
		{"negative left", Rect{-1, 0, 8, 8}, 64, 64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.In(tt.w, tt.h); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
