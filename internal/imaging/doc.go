// Package imaging handles getting skin pixels in and out of the toolkit:
// cached file loading, image metadata, base64 PNG transport, and NRGBA
// normalization.
//
// Skins arrive as PNG (or JPEG) files or as base64 payloads and are decoded
// to image.Image; transformation results leave as base64-encoded PNG via
// ImagePayload. The ImageCache avoids redundant disk reads when several
// operations inspect the same file and is safe for concurrent use.
//
// Decode failures are reported as wrapped errors and never yield a partial
// image.
package imaging
