// Package geom provides the geometric primitives the HiCuts tree builder
// cuts and collides against: a fixed four-dimensional Box built from closed,
// inclusive Interval values over the canonical dimension order (source port,
// destination port, source address, destination address).
//
// Everything here is pure and allocation-light: Box and Interval are value
// types, Cut and UnequalCut return freshly allocated Box slices, and Collide
// never mutates either operand. There is no concurrency to speak of — a Box
// is built once per rule and never touched by more than one goroutine.
package geom
