package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"artillery/internal/client"
)

// Entry converts a finished shot into a protobuf Struct. Turns count from 1.
func Entry(gameID uuid.UUID, turn int, shot client.Shot) (*structpb.Struct, error) {
	trail := make([]any, 0, len(shot.Trail))
	for _, p := range shot.Trail {
		trail = append(trail, map[string]any{"x": p.X, "y": p.Y})
	}

	st, err := structpb.NewStruct(map[string]any{
		"game":     gameID.String(),
		"turn":     turn,
		"shooter":  shot.Shooter.Color(),
		"target":   shot.Target.Color(),
		"angle":    shot.Angle,
		"velocity": shot.Velocity,
		"wind":     shot.Wind,
		"landing":  map[string]any{"x": shot.Landing.X, "y": shot.Landing.Y},
		"distance": shot.Distance,
		"hit":      shot.Hit,
		"score":    shot.Shooter.Score(),
		"trail":    trail,
	})
	if err != nil {
		return nil, fmt.Errorf("build report for turn %d: %w", turn, err)
	}
	return st, nil
}

// Writer appends one JSON encoded report per line.
type Writer struct {
	w      io.Writer
	gameID uuid.UUID
	turn   int
	trail  bool
}

// NewWriter returns a Writer for one game. Trails are left out unless
// withTrail is set since they make up most of the report.
func NewWriter(w io.Writer, gameID uuid.UUID, withTrail bool) *Writer {
	return &Writer{w: w, gameID: gameID, trail: withTrail}
}

func (rw *Writer) Write(shot client.Shot) error {
	rw.turn++
	if !rw.trail {
		shot.Trail = nil
	}

	st, err := Entry(rw.gameID, rw.turn, shot)
	if err != nil {
		return err
	}

	b, err := protojson.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal report for turn %d: %w", rw.turn, err)
	}
	b = append(b, '\n')
	if _, err := rw.w.Write(b); err != nil {
		return fmt.Errorf("write report for turn %d: %w", rw.turn, err)
	}
	return nil
}
