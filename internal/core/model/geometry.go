package model

// Point is a 2D position in points.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (point Point) Add(other Point) Point {
	return Point{X: point.X + other.X, Y: point.Y + other.Y}
}

// Size is a 2D extent in points.
type Size struct {
	Width  float64
	Height float64
}

// IconGeometry is the on-screen bounding box of the dock icon.
// Position uses a top-left screen origin, as reported by the accessibility API.
type IconGeometry struct {
	Position Point
	Size     Size
}

// Center returns the box centre converted to the bottom-left origin used for
// pointer coordinates.
func (icon IconGeometry) Center(screenHeight float64) Point {
	return Point{
		X: icon.Position.X + icon.Size.Width/2,
		Y: screenHeight - (icon.Position.Y + icon.Size.Height/2),
	}
}

// Contains reports whether a bottom-left origin pointer position lies inside
// the box. Bounds are inclusive on every edge.
func (icon IconGeometry) Contains(mouse Point, screenHeight float64) bool {
	top := screenHeight - icon.Position.Y
	bottom := top - icon.Size.Height
	return mouse.X >= icon.Position.X &&
		mouse.X <= icon.Position.X+icon.Size.Width &&
		mouse.Y <= top &&
		mouse.Y >= bottom
}
