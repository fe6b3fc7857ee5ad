// Package interp builds one-dimensional interpolants over sampled profiles.
//
// Available kinds, from cheapest to smoothest:
//
//   - [KindNearest], [KindPrevious], [KindNext]: step functions
//   - [KindLinear]: piecewise linear (default)
//   - [KindFritschButland]: monotone piecewise cubic
//   - [KindAkima]: Akima spline
//   - [KindNaturalCubic]: natural cubic spline
//   - [KindCubic]: not-a-knot cubic spline
//
// Every [Interpolator] returned by [New] clamps queries outside the sampled
// range to the first or last sample value. The spline kinds are backed by
// gonum.org/v1/gonum/interp.
package interp
