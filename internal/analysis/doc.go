// Package analysis measures animation traces.
//
// A trace renders every step of one loop offline and records, per frame,
// how much of the surface is painted and a digest of its pixels:
//
//   - [Coverage]: fraction of pixels that differ from the background
//   - [Run]: coverage and digests over a range of steps
//   - [Period]: smallest repeat length of a digest sequence
//   - [Plot]: ASCII chart of a coverage trace
//
// A looping unsolved diagram shows a period dividing 360; a solved
// one-shot animation settles into a constant tail:
//
//	tr, _ := analysis.Run(anim.Input{Category: "dice"}, analysis.Options{})
//	p := analysis.Period(tr.Digests) // 180
package analysis
