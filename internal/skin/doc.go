// Package skin implements the Minecraft skin texture transformations.
//
// All operations take a decoded image.Image and produce a fresh canvas;
// inputs are never mutated. The operations are driven by the region tables
// in the regions package:
//
//   - Expand: legacy 64x32 texture -> modern 64x64 layout
//   - SwapLayers: exchange base (layer1) and overlay (layer2) content
//   - RemoveLayer: blank one layer, keep the other in place
//   - ConvertSkinType: wide (4px) <-> narrow (3px) arm conversion with
//     alpha-based auto-detection
//   - HasPixels / HasTransparency: read-only alpha predicates over regions
//
// # Canvas Semantics
//
// Every transformation validates input dimensions before allocating output
// and builds its result on a transparent 64x64 NRGBA canvas. Pixels outside
// all tabled regions are therefore dropped by SwapLayers and RemoveLayer;
// applying SwapLayers twice reproduces the original content restricted to
// the tabled regions.
//
// # Arm Width Conversion
//
// Wide->Narrow removes exactly 2 pixel columns from each arm part;
// Narrow->Wide re-inserts 2 duplicated columns. The two directions restore
// geometry and classification but are not pixel-exact inverses: the
// duplicated columns need not equal the ones that were dropped.
//
// # Thread Safety
//
// A Toolkit only reads its region tables, so a single Toolkit is safe for
// concurrent use across goroutines.
package skin
