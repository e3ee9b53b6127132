// Package colorspace converts and validates single colors across the HEX,
// RGB and YCbCr (ITU-R BT.601, limited range) representations.
//
// Everything in this package is pure: no I/O, no shared state, safe to call
// from any goroutine.
//
// # Representations
//
//   - RGB: three 8-bit channels (0-255). The canonical pivot; every other
//     representation is derived from it.
//   - HEX: "#RRGGBB", uppercase on output, '#' optional and case ignored on
//     input. The 3-digit shorthand is not accepted.
//   - YCbCr: Y in 16-235, Cb and Cr in 16-240.
//
// # Lossy YCbCr
//
// The forward transform uses the BT.601 luma/chroma weights on full-range
// RGB and clamps into the limited range; the inverse uses the limited-range
// expansion (1.164 per luma step). The pair is not an exact inverse. Over the
// whole RGB cube a round trip differs by at most MaxRoundTripError levels on
// any channel. This is expected, not a defect.
//
// # Rounding
//
// Every transform rounds to the nearest integer with ties away from zero
// (math.Round) and clamps after rounding.
//
// # Validation
//
// ValidateAndConvert is the single entry point for free-form user text. It
// either returns an RGB value or an error matching ErrInputRejected; there
// is no other failure mode.
package colorspace
