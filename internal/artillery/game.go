package artillery

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

const maxWind = 10

const (
	leftX  = -90
	rightX = 90
)

// Game is the shared state of one match between two cannons.
type Game struct {
	id         uuid.UUID
	cannonSize float64
	ballSize   float64
	players    [2]*Player
	current    int
	wind       float64
	rng        *rand.Rand
}

// NewGame creates a game with the given cannon size (length of the sides)
// and ball size (radius). The wind source is seeded from the clock.
func NewGame(cannonSize, ballSize float64) *Game {
	return NewSeededGame(cannonSize, ballSize, uint64(time.Now().UnixNano()))
}

// NewSeededGame is NewGame with a fixed wind source, so the sequence of
// rounds is reproducible.
func NewSeededGame(cannonSize, ballSize float64, seed uint64) *Game {
	g := &Game{
		id:         uuid.New(),
		cannonSize: cannonSize,
		ballSize:   ballSize,
		rng:        rand.New(rand.NewSource(seed)),
	}
	g.players = [2]*Player{
		newPlayer(g, false, leftX, "blue"),
		newPlayer(g, true, rightX, "red"),
	}
	g.rollWind()
	return g
}

// ID identifies the game in logs and shot reports.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Players returns both players, left cannon first.
func (g *Game) Players() (*Player, *Player) {
	return g.players[0], g.players[1]
}

func (g *Game) CannonSize() float64 {
	return g.cannonSize
}

func (g *Game) BallSize() float64 {
	return g.ballSize
}

// CurrentPlayer is the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.current]
}

// OtherPlayer is the opponent of the current player.
func (g *Game) OtherPlayer() *Player {
	return g.players[1-g.current]
}

// CurrentPlayerNumber is the index (0 or 1) of the current player in Players.
func (g *Game) CurrentPlayerNumber() int {
	return g.current
}

// NextPlayer passes the turn to the other player.
func (g *Game) NextPlayer() {
	g.current = 1 - g.current
}

// SetCurrentWind overrides the wind of the current round. Only used by tests.
func (g *Game) SetCurrentWind(wind float64) {
	g.wind = wind
}

func (g *Game) CurrentWind() float64 {
	return g.wind
}

// NewRound starts a new round with a random wind in [-10, 10).
// Scores and the turn are left alone.
func (g *Game) NewRound() {
	g.rollWind()
	slog.Debug("new round", slog.Any("game", g.id), slog.Any("wind", g.wind))
}

func (g *Game) rollWind() {
	g.wind = g.rng.Float64()*2*maxWind - maxWind
}
