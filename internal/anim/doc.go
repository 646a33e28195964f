// Package anim drives the per-view repaint loop.
//
// A Driver owns one drawing surface and one periodic ticker. Every tick
// advances the wrapping step counter, clears the surface and asks the scene
// dispatcher for a fresh frame. Hosts feed it the selected problem through
// Update and tear it down with Stop; after Stop returns no further frame is
// painted or delivered.
package anim
