// Package phi holds the golden-ratio constants the composition is laid out
// and timed with.
package phi

import "math"

// Phi is the golden ratio.
const Phi = 1.6180339887498948

var (
	// Conjugate (1/Φ, about 0.618) places titles and slogans above and
	// below the center and arrows beside it.
	Conjugate = (math.Sqrt(5) - 1) / 2

	// Conjugate2 (2φ-φ², about 0.854) bounds the hold of a story caption
	// and places arrows on portrait screens.
	Conjugate2 = 2*Conjugate - Conjugate*Conjugate
)
