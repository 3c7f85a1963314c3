// Package wide provides SIMD-friendly 4-wide types for quad-fragment processing.
//
// This package implements a wide float type (F32x4) designed to enable Go
// compiler auto-vectorization. By using a fixed-size array and simple loops,
// it allows the compiler to generate SIMD instructions on supported
// architectures (SSE4.1, NEON) while remaining portable scalar code everywhere
// else.
//
// # Wide Types
//
// F32x4: 4 float32 values for edge-function, depth-plane, and barycentric
// math. Edge coefficients and fixed-point vertex coordinates are both
// converted to float32 before any lane math runs, so one lane width covers
// every quad-fragment computation the rasterizer needs.
//
// The width is fixed at 4 because the rasterizer's unit of work is the
// quad-fragment: the four pixel samples of a 2x2 block, processed together.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Lane order is always (top-left, top-right, bottom-left, bottom-right)
package wide
