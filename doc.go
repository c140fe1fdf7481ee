// Package scan converts 2D primitives given by integer control points
// into sequences of pixels.
//
// Lines and polygon outlines can be drawn with a naive, a DDA or the
// Bresenham algorithm.  Circles and ellipses are given by two opposite
// corners of their bounding box and drawn with integer midpoint
// algorithms.  Curves are either Bezier curves, evaluated with the de
// Casteljau algorithm, or uniform cubic B-splines.
//
// Control points can be translated, rotated and scaled with [Translate],
// [Rotate] and [Scale], and segments can be clipped to a rectangular
// [Window] with the Cohen-Sutherland or the Liang-Barsky algorithm.
// All of these functions return new slices and never modify their
// arguments.
//
// Coordinates follow the screen convention with the y axis pointing
// down.  Sampled points of DDA lines and curves are converted to pixels
// by adding 0.5 and truncating towards zero.  Transformed control points
// and clip intersections are truncated towards zero.
package scan

//go:generate go run ./testcases/export
