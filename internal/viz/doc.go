// Package viz renders study frames in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas; [FromImage] downsamples a
//     raster frame onto it
//   - [Theme]: color schemes for the TUI, selectable by name
//   - styles and small widgets shared by the views
package viz
