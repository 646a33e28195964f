// Package canvas provides the drawing surface the visualizations paint on.
//
// A [Surface] accepts filled and stroked paths, rectangles and text. Two
// implementations are provided:
//
//   - [Raster]: anti-aliased rendering onto an *image.RGBA using rasterx
//   - [Recorder]: an operation log used to assert what a frame painted
//
// Paths keep arcs symbolic ([Path.Arc]) so a recorder can report the exact
// sweep of an arc; the raster backend flattens them into line segments.
package canvas
