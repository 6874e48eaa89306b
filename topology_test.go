package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCornersInFaceTouchFace(t *testing.T) {
	count := map[CornerPosition]int{}
	for _, f := range Faces {
		for _, pos := range CornersIn(f) {
			assert.Contains(t, FacesOfCorner(pos), f, "corner %s in face %s", pos, f)
			count[pos]++
		}
	}
	for _, pos := range CornerPositions {
		assert.Equal(t, 3, count[pos], "corner %s should be in 3 faces", pos)
	}
}

func TestEdgesInFaceTouchFace(t *testing.T) {
	count := map[EdgePosition]int{}
	for _, f := range Faces {
		for _, pos := range EdgesIn(f) {
			assert.Contains(t, FacesOfEdge(pos), f, "edge %s in face %s", pos, f)
			count[pos]++
		}
	}
	for _, pos := range EdgePositions {
		assert.Equal(t, 2, count[pos], "edge %s should be in 2 faces", pos)
	}
}

func TestFacesOfPositionAreDistinctAxes(t *testing.T) {
	for _, pos := range CornerPositions {
		faces := FacesOfCorner(pos)
		for i := range faces {
			for j := i + 1; j < len(faces); j++ {
				assert.NotEqual(t, faces[i], faces[j], "corner %s", pos)
				assert.NotEqual(t, faces[i].Opposite(), faces[j], "corner %s", pos)
			}
		}
	}
	for _, pos := range EdgePositions {
		faces := FacesOfEdge(pos)
		assert.NotEqual(t, faces[0], faces[1], "edge %s", pos)
		assert.NotEqual(t, faces[0].Opposite(), faces[1], "edge %s", pos)
	}
}

func TestStickerOrderCoversFace(t *testing.T) {
	for _, f := range Faces {
		assert.ElementsMatch(t, CornersIn(f), CornerStickerOrder(f), "face %s corners", f)
		assert.ElementsMatch(t, EdgesIn(f), EdgeStickerOrder(f), "face %s edges", f)
	}
}
