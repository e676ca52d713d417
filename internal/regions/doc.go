// Package regions defines the coordinate tables that describe where each
// body part of a Minecraft skin texture lives.
//
// A skin texture is divided into named rectangular parts, grouped by body
// part (head, body, arms, legs) and stacked in two layers: layer1 is the
// base skin and layer2 the overlay. The canonical layout exists in two
// arm-width conventions:
//
//   - Wide ("classic"/Steve): arms are 4 pixels wide
//   - Narrow ("slim"/Alex): arms are 3 pixels wide
//
// The narrow table is derived from the wide one by shrinking the right edge
// of every arm part by 2 pixels; all other parts are identical.
//
// # Coordinate System
//
// Rectangles use the standard image convention: (Left, Top) inclusive,
// (Right, Bottom) exclusive, origin at the top-left corner.
//
// # Thread Safety
//
// Tables are immutable after construction and safe to share across
// goroutines without locking. Default() and its Narrow() derivation return
// the same cached instances on every call.
//
// # Serialization
//
// Table marshals to the nested JSON shape used by the original tool:
// layer id -> body part id -> ordered list of {"name", "coords"} objects,
// where coords is the 4-element [left, top, right, bottom] array. Callers
// may substitute a custom table with the same key shape.
package regions
