package rubik

import (
	"fmt"
	"strings"
)

// Face represents one of the six sides of the cube.
// The numeric values are canonical: a face and its opposite differ by 3.
type Face int

const (
	FaceFront  Face = 0 // F
	FaceRight  Face = 1 // R
	FaceTop    Face = 2 // U
	FaceBack   Face = 3 // B
	FaceLeft   Face = 4 // L
	FaceBottom Face = 5 // D
)

// Faces lists every face in canonical order.
var Faces = [6]Face{FaceFront, FaceRight, FaceTop, FaceBack, FaceLeft, FaceBottom}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceFront && f <= FaceBottom
}

// String returns the notation letter for the face.
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "F"
	case FaceRight:
		return "R"
	case FaceTop:
		return "U"
	case FaceBack:
		return "B"
	case FaceLeft:
		return "L"
	case FaceBottom:
		return "D"
	default:
		return "?"
	}
}

// Name returns the lower-case face name, e.g. "front".
func (f Face) Name() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseFace accepts a notation letter (F, R, U, B, L, D in either case) or a
// face name.
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "front":
		return FaceFront, nil
	case "r", "right":
		return FaceRight, nil
	case "u", "top", "up":
		return FaceTop, nil
	case "b", "back":
		return FaceBack, nil
	case "l", "left":
		return FaceLeft, nil
	case "d", "bottom", "down":
		return FaceBottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}

// Top returns the face above f when f is viewed head-on in the standard net.
func (f Face) Top() Face {
	switch f {
	case FaceTop:
		return FaceBack
	case FaceBottom:
		return FaceFront
	default:
		return FaceTop
	}
}

// Bottom returns the face below f in the standard net.
func (f Face) Bottom() Face {
	switch f {
	case FaceTop:
		return FaceFront
	case FaceBottom:
		return FaceBack
	default:
		return FaceBottom
	}
}

// Left returns the face to the left of f in the standard net.
func (f Face) Left() Face {
	switch f {
	case FaceBack:
		return FaceRight
	case FaceRight:
		return FaceFront
	case FaceLeft:
		return FaceBack
	default:
		return FaceLeft
	}
}

// Right returns the face to the right of f in the standard net.
func (f Face) Right() Face {
	switch f {
	case FaceBack:
		return FaceLeft
	case FaceRight:
		return FaceBack
	case FaceLeft:
		return FaceFront
	default:
		return FaceRight
	}
}

// Opposite returns the face parallel to f.
func (f Face) Opposite() Face {
	return (f + 3) % 6
}

// AdjacentFaces returns the four neighbors of f in top, left, bottom, right order.
func (f Face) AdjacentFaces() [4]Face {
	return [4]Face{f.Top(), f.Left(), f.Bottom(), f.Right()}
}
