package client

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"artillery/internal/artillery"
)

// ErrHelp is returned for empty or unknown input. Its message is the usage text.
var ErrHelp = errors.New("use fire <angle> <velocity> (or f) to shoot\nfire or f alone repeats your last aim\nq or quit to leave the game")

// Command is the aim the current player chose for its next shot.
type Command struct {
	Angle    float64
	Velocity float64
}

// HandleUserInput parses one line typed by the current player. Quitting is
// reported as io.EOF.
func HandleUserInput(input string, current *artillery.Player) (Command, error) {
	args := strings.Fields(input)
	if len(args) == 0 {
		return Command{}, ErrHelp
	}

	switch strings.ToLower(args[0]) {
	case "fire", "f":
		switch len(args) {
		case 1:
			angle, velocity := current.Aim()
			return Command{Angle: angle, Velocity: velocity}, nil
		case 3:
			angle, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return Command{}, fmt.Errorf("invalid angle %q: %w", args[1], err)
			}
			velocity, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return Command{}, fmt.Errorf("invalid velocity %q: %w", args[2], err)
			}
			return Command{Angle: angle, Velocity: velocity}, nil
		default:
			return Command{}, fmt.Errorf("fire takes an angle and a velocity, got %d arguments", len(args)-1)
		}
	case "quit", "q":
		return Command{}, io.EOF
	case "help", "h":
		return Command{}, ErrHelp
	default:
		return Command{}, ErrHelp
	}
}
