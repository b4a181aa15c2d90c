// SPDX-License-Identifier: MIT

// Package quaternion implements quaternion algebra and vector rotation over
// arbitrary element types.
//
// Quaternion[T] is a value (X, Y, Z, W) with W the real part. Rotate applies
// the sandwich product q ⊗ (v, 0) ⊗ q⁻¹ through the Multiply and Invert
// slots; Invert in turn is Conjugate / MagnitudeSquared. FromAxisAngle takes
// sine and cosine from the trig operations, so element types without native
// trig get the series approximation.
//
//	q, _ := quaternion.FromAxisAngle(vector.Of(0.0, 0, 1), math.Pi/2)
//	v, _ := quaternion.Rotate(q, vector.Of(1.0, 0, 0)) // ≈ (0, 1, 0)
//
// Slerp is unsupported for every type.
package quaternion
