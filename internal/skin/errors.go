package skin

import (
	"errors"
	"fmt"
)

// ErrInvalidLayerIndex is returned when RemoveLayer is given a layer index
// outside {1, 2}.
var ErrInvalidLayerIndex = errors.New("invalid layer index")

// DimensionError reports an input buffer whose size does not match what an
// operation requires. No output is produced when it is returned.
type DimensionError struct {
	Op         string // operation that rejected the input
	Width      int    // actual width
	Height     int    // actual height
	WantWidth  int
	WantHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: invalid dimensions %dx%d, expected %dx%d",
		e.Op, e.Width, e.Height, e.WantWidth, e.WantHeight)
}

// InvalidTypeError reports a skin type token outside the two canonical
// conventions and their aliases.
type InvalidTypeError struct {
	Token string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid skin type: %q", e.Token)
}
