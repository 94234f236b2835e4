package effect

// point is a position in normalized screen coordinates.
type point struct{ x, y float64 }

// drumMap places General MIDI percussion notes around a virtual kit.
var drumMap = map[uint8]point{
	// kicks
	35: {0.5, 0.85},
	36: {0.5, 0.85},
	// snares and side stick
	37: {0.4, 0.6},
	38: {0.4, 0.6},
	40: {0.4, 0.6},
	// hi-hats
	42: {0.2, 0.6},
	44: {0.2, 0.65},
	46: {0.2, 0.5},
	// toms
	41: {0.75, 0.7},
	43: {0.65, 0.55},
	45: {0.5, 0.45},
	47: {0.35, 0.55},
	48: {0.3, 0.5},
	50: {0.3, 0.5},
	// cymbals
	49: {0.2, 0.3},
	57: {0.8, 0.3},
	52: {0.85, 0.25},
	55: {0.15, 0.25},
	51: {0.7, 0.4},
	59: {0.7, 0.4},
	53: {0.65, 0.35},
}

// Normalized returns the kit position of note in 0..1 coordinates. Notes
// outside the kit are spread horizontally across the middle of the screen.
func Normalized(note uint8) (x, y float64) {
	if p, ok := drumMap[note]; ok {
		return p.x, p.y
	}
	return 0.1 + float64(note%24)/24*0.8, 0.5
}

// Position maps note onto a w by h surface.
func Position(note uint8, w, h int) (x, y int) {
	nx, ny := Normalized(note)
	return int(nx * float64(w)), int(ny * float64(h))
}
