// Package catalog holds the fixed set of study problems.
//
// Problems are immutable and looked up by their 1-based id. Each record
// names the visualization tag the scene package draws for it.
package catalog
