// Package mosaic implements a tiled RGBA composition engine.
//
// A Surface owns one contiguous byte arena covering a fixed grid of
// equally sized tiles. Decoded images are placed into tiles with an
// aspect-preserving resize plus a user scale and offset; tiles without
// an image are painted with either a solid background color or an
// animated procedural pattern. The whole arena is exposed as a flat
// byte slice so an external renderer can present it without copying.
//
// The engine is single-threaded by design: exactly one goroutine may
// operate on a Surface at a time, and every operation runs to
// completion before the arena is read. Decoding (package codec) and
// presentation (integration/termview, package export) are thin
// collaborators around this core.
package mosaic
