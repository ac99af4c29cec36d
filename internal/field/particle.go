package field

import "math"

// Particle is a point mass advanced by the simulation and painted each frame.
type Particle struct {
	X, Y   float64 // Position in surface coordinates
	VX, VY float64 // Velocity in surface units per tick
	Size   float64 // Painted radius (half-extent for squares and triangles)
	Color  HSL
}

// Speed returns the current velocity magnitude.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
