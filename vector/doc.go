// SPDX-License-Identifier: MIT

// Package vector implements vector algebra over arbitrary element types.
//
// Vector[T] is a plain slice of components. Every operation is an engine
// operation: it validates T's operators, specializes on first use and is
// cached per element type. Composites go through the slots of their parts
// (MagnitudeSquared through DotProduct, Magnitude through MagnitudeSquared,
// Normalize through Magnitude), so each formula exists once.
//
// float64 Add, Subtract, Multiply and DotProduct are served by
// algo-vecmath block kernels and gonum/floats.
//
// Angle needs T's arc cosine and takes it from the trig strategy registry;
// element types without a registered strategy get engine.ErrUnsupported.
// Slerp is unsupported for every type.
package vector
