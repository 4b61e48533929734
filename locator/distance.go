package locator

// Distance returns the orthogonal (Manhattan, L1) distance between p1 and p2:
//
//	|x1 - x2| + |y1 - y2|
//
// Coordinates are assumed small enough that the result does not overflow.
func Distance(p1, p2 Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
