package artillery

import (
	"log/slog"
	"math"
)

// The field is wider than the distance between the cannons so a shot can
// land behind either of them.
const (
	FieldLower = -110
	FieldUpper = 110
)

const (
	defaultAngle    = 45
	defaultVelocity = 40
)

// Player controls one cannon. It keeps a reference to its game for the
// shared sizes and the wind but does not own it.
type Player struct {
	game     *Game
	reversed bool
	x        float64
	color    string
	angle    float64
	velocity float64
	score    int
}

func newPlayer(g *Game, reversed bool, x float64, color string) *Player {
	return &Player{
		game:     g,
		reversed: reversed,
		x:        x,
		color:    color,
		angle:    defaultAngle,
		velocity: defaultVelocity,
	}
}

// Fire creates a projectile starting at the centre of this player's cannon.
// The aim is remembered as given; a reversed cannon mirrors the angle so
// that 0 points towards the opponent.
func (p *Player) Fire(angle, velocity float64) *Projectile {
	p.angle = angle
	p.velocity = velocity

	launch := angle
	if p.reversed {
		launch = 180 - angle
	}

	slog.Debug("fire",
		slog.String("player", p.color),
		slog.Any("angle", launch),
		slog.Any("velocity", velocity),
		slog.Any("wind", p.game.CurrentWind()),
	)

	return NewProjectile(
		launch, velocity, p.game.CurrentWind(),
		p.x, p.game.CannonSize()/2, FieldLower, FieldUpper,
	)
}

// ProjectileDistance gives the x-distance from the nearest edge of this
// player's cannon to the projectile. It is 0 when the projectile touches
// the cannon, negative when it is to the left.
func (p *Player) ProjectileDistance(proj *Projectile) float64 {
	distX := proj.X() - p.X()
	distMin := p.game.BallSize() + p.game.CannonSize()/2

	switch {
	case math.Abs(distX) <= distMin:
		return 0
	case distX > 0:
		return distX - distMin
	default:
		return distX + distMin
	}
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) IncreaseScore() {
	p.score++
}

func (p *Player) Color() string {
	return p.color
}

// X is the position of the centre of the cannon.
func (p *Player) X() float64 {
	return p.x
}

// Reversed reports whether the cannon faces left.
func (p *Player) Reversed() bool {
	return p.reversed
}

// Aim returns the angle and velocity of the last shot, initially (45, 40).
func (p *Player) Aim() (angle, velocity float64) {
	return p.angle, p.velocity
}
