package shape

// Colliding reports whether moving, if it dropped one more row, would overlap
// a filled cell of stationary. The one-row lookahead lets the caller settle a
// piece on contact before the next gravity step carries it through.
func Colliding(moving, stationary Geometry) bool {
	if stationary.Top() > moving.Bottom() {
		return false
	}
	if stationary.Right() <= moving.Left() || stationary.Left() >= moving.Right() {
		return false
	}

	for y := 0; y < moving.Height(); y++ {
		for x := 0; x < moving.Width(); x++ {
			if !moving.Filled(x, y) {
				continue
			}
			yc := (moving.Top() + y) - stationary.Top() + 1
			xc := (moving.Left() + x) - stationary.Left()
			if stationary.Filled(xc, yc) {
				return true
			}
		}
	}
	return false
}

// FirstColliding returns the index of the first shape in others that moving
// collides with, or -1.
func FirstColliding(moving Geometry, others []Shape) int {
	for i := range others {
		if Colliding(moving, others[i]) {
			return i
		}
	}
	return -1
}
