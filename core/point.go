package core

// Entity is a unique identifier for an entity in the world
type Entity uint64

// Point represents a 2D integer coordinate or displacement
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of p and q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// IsZero reports whether both components are zero
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
