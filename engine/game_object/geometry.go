package game_object

import (
	"math"

	"github.com/Carmen-Shannon/oxy-pong/common"
)

// CircleFan builds a triangle fan around (cx, cy): the center vertex followed by segments
// perimeter vertices, vertex k+1 at angle 2*pi*k/segments. Coordinates are converted to NDC.
//
// Parameters:
//   - cx, cy: the center in arena units
//   - radius: the radius in arena units
//   - segments: the number of perimeter vertices
//   - arenaWidth, arenaHeight: the logical arena size
//
// Returns:
//   - []float32: (segments+1)*2 floats
func CircleFan(cx, cy, radius float32, segments int, arenaWidth, arenaHeight float32) []float32 {
	out := make([]float32, 0, (segments+1)*2)
	out = append(out, common.ToNDC(cx, arenaWidth), common.ToNDC(cy, arenaHeight))
	for k := range segments {
		theta := 2 * math.Pi * float64(k) / float64(segments)
		px := cx + radius*float32(math.Cos(theta))
		py := cy + radius*float32(math.Sin(theta))
		out = append(out, common.ToNDC(px, arenaWidth), common.ToNDC(py, arenaHeight))
	}
	return out
}

// FanIndices returns the triangle list for a CircleFan: (0, k+1, k+2) for every adjacent pair
// of perimeter vertices, closed by (0, segments, 1).
//
// Parameters:
//   - segments: the number of perimeter vertices
//
// Returns:
//   - []uint32: segments*3 indices
func FanIndices(segments int) []uint32 {
	out := make([]uint32, 0, segments*3)
	for k := range segments - 1 {
		out = append(out, 0, uint32(k+1), uint32(k+2))
	}
	return append(out, 0, uint32(segments), 1)
}

// Quad builds an axis-aligned rectangle centered on (cx, cy) with corners in the order
// right-bottom, left-bottom, left-top, right-top, converted to NDC.
//
// Parameters:
//   - cx, cy: the center in arena units
//   - width, height: the rectangle size in arena units
//   - arenaWidth, arenaHeight: the logical arena size
//
// Returns:
//   - []float32: 8 floats
func Quad(cx, cy, width, height, arenaWidth, arenaHeight float32) []float32 {
	left, right := cx-width/2, cx+width/2
	bottom, top := cy-height/2, cy+height/2
	return []float32{
		common.ToNDC(right, arenaWidth), common.ToNDC(bottom, arenaHeight),
		common.ToNDC(left, arenaWidth), common.ToNDC(bottom, arenaHeight),
		common.ToNDC(left, arenaWidth), common.ToNDC(top, arenaHeight),
		common.ToNDC(right, arenaWidth), common.ToNDC(top, arenaHeight),
	}
}

// QuadIndices returns the two triangles of a Quad.
func QuadIndices() []uint32 {
	return []uint32{0, 1, 2, 0, 2, 3}
}
