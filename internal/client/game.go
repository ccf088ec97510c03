package client

import (
	"log/slog"

	"artillery/internal/artillery"
)

// A shot that has not landed after this many steps is abandoned where it is.
const maxSteps = 100_000

// Shot is the outcome of one turn.
type Shot struct {
	Shooter  *artillery.Player
	Target   *artillery.Player
	Angle    float64
	Velocity float64
	Wind     float64
	Trail    []artillery.Point
	Landing  artillery.Point
	Distance float64
	Hit      bool
}

// Shoot plays one turn for the current player: fire, advance the projectile
// by step seconds until it lands, and measure it against the opponent. A hit
// scores a point for the shooter and starts a new round. The turn always
// passes to the other player.
func Shoot(g *artillery.Game, cmd Command, step float64) Shot {
	shooter := g.CurrentPlayer()
	target := g.OtherPlayer()
	wind := g.CurrentWind()

	proj := shooter.Fire(cmd.Angle, cmd.Velocity)
	trail := []artillery.Point{proj.Position()}
	for i := 0; proj.IsMoving() && i < maxSteps; i++ {
		proj.Update(step)
		trail = append(trail, proj.Position())
	}
	if proj.IsMoving() {
		slog.Debug("projectile did not land", slog.Any("x", proj.X()), slog.Any("y", proj.Y()))
	}

	distance := target.ProjectileDistance(proj)
	shot := Shot{
		Shooter:  shooter,
		Target:   target,
		Angle:    cmd.Angle,
		Velocity: cmd.Velocity,
		Wind:     wind,
		Trail:    trail,
		Landing:  proj.Position(),
		Distance: distance,
		Hit:      distance == 0,
	}

	if shot.Hit {
		shooter.IncreaseScore()
		g.NewRound()
	}
	g.NextPlayer()

	return shot
}

// Winner returns the first player to reach winningScore. A winningScore of
// 0 or less means the game never ends on score.
func Winner(g *artillery.Game, winningScore int) (*artillery.Player, bool) {
	if winningScore <= 0 {
		return nil, false
	}
	p0, p1 := g.Players()
	for _, p := range []*artillery.Player{p0, p1} {
		if p.Score() >= winningScore {
			return p, true
		}
	}
	return nil, false
}
