// SPDX-License-Identifier: MIT

// Package trig provides trigonometry over arbitrary element types.
//
// Two mechanisms live here:
//
//   - Sine, Cosine, Tangent, their reciprocals and the degree/radian
//     conversions are engine operations. Built-in floats are served by the
//     math package through the fast-path table; every other type runs a
//     4-term Taylor series after reducing the angle into [0, 2π) and
//     mirroring it into the first quadrant. The series is a bounded
//     approximation (about 1e-4 near π/2), not full precision.
//   - Trigonometry is a strategy holding the whole 24-member family
//     (circular, inverse, hyperbolic and inverse hyperbolic). It is
//     registered for float64 and float32; For returns a strategy whose
//     every member fails with engine.ErrUnsupported for other types, and
//     Register installs a custom one.
//
// Example:
//
//	s, _ := trig.Sine(fixed)               // series path for a user type
//	a, _ := trig.For[float64]().Acos(0.5)  // math.Acos
package trig
