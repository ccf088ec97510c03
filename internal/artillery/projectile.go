package artillery

import "math"

// Gravity is the downward acceleration applied to every projectile.
const Gravity = 9.8

// Projectile is a cannon ball in flight. Angle 0 is straight east (positive
// x) and 90 straight up. It stops once it touches the ground or a field
// bound.
type Projectile struct {
	x, y           float64
	xvel, yvel     float64
	wind           float64
	xLower, xUpper float64
}

func NewProjectile(angle, velocity, wind, x, y, xLower, xUpper float64) *Projectile {
	theta := angle * math.Pi / 180
	return &Projectile{
		x:      x,
		y:      y,
		xvel:   velocity * math.Cos(theta),
		yvel:   velocity * math.Sin(theta),
		wind:   wind,
		xLower: xLower,
		xUpper: xUpper,
	}
}

// Update advances the projectile by t seconds using the average of the old
// and new velocity over the step. Large steps are not subdivided, so keep t
// well below a second.
func (p *Projectile) Update(t float64) {
	yvel := p.yvel - Gravity*t
	xvel := p.xvel + p.wind*t

	p.x += t * (p.xvel + xvel) / 2
	p.y += t * (p.yvel + yvel) / 2

	p.y = max(p.y, 0)
	p.x = min(max(p.x, p.xLower), p.xUpper)

	p.xvel = xvel
	p.yvel = yvel
}

// IsMoving is true until the projectile hits the ground or reaches one of
// the x limits.
func (p *Projectile) IsMoving() bool {
	return p.y > 0 && p.xLower < p.x && p.x < p.xUpper
}

func (p *Projectile) X() float64 {
	return p.x
}

// Y is the height of the projectile, never below 0.
func (p *Projectile) Y() float64 {
	return p.y
}

// Point is a position on the field.
type Point struct {
	X, Y float64
}

func (p *Projectile) Position() Point {
	return Point{X: p.x, Y: p.y}
}
