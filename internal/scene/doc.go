// Package scene draws the per-problem diagrams.
//
// Each visualization category has one renderer, a function of the surface,
// the animation step and the reveal flag. Renderers show the problem
// statement unconditionally and, once revealed, switch to the solved accent
// and annotate the answer. One-shot reveal animations clamp with [Progress];
// looping animations used before reveal have periods that divide [Cycle].
//
// [Render] dispatches on [Category]; tags that do not name a category fall
// through to a rotating-symbols renderer.
package scene
