package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"artillery/internal/ansii"
	"artillery/internal/artillery"
	"artillery/internal/client"
	"artillery/internal/config"
	"artillery/internal/renderer"
	"artillery/internal/report"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("game stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newGame(cfg config.Configuration) *artillery.Game {
	if cfg.Seed != 0 {
		return artillery.NewSeededGame(cfg.CannonSize, cfg.BallSize, cfg.Seed)
	}
	return artillery.NewGame(cfg.CannonSize, cfg.BallSize)
}

func fieldSize(cfg config.Configuration) (rows, cols int) {
	rows, cols = cfg.FieldRows, cfg.FieldCols
	if rows > 0 && cols > 0 {
		return rows, cols
	}

	width, height, err := ansii.GetTermSize()
	if err != nil {
		slog.Debug("using default field size", slog.Any("error", err))
		width, height = 80, 24
	}
	if rows <= 0 {
		// leave room for the prompt and the shot summary
		rows = height - 3
	}
	if cols <= 0 {
		cols = width
	}
	return rows, cols
}

func run(ctx context.Context, cfg config.Configuration, in io.Reader, out io.Writer) error {
	g := newGame(cfg)
	rows, cols := fieldSize(cfg)

	var reports *report.Writer
	if cfg.ReportPath != "" {
		f, err := os.OpenFile(cfg.ReportPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open report file: %w", err)
		}
		defer f.Close()
		reports = report.NewWriter(f, g.ID(), cfg.ReportTrail)
	}

	slog.Info("game started", slog.Any("game", g.ID()), slog.Any("wind", g.CurrentWind()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, in)

	frame := renderer.Frame{Game: g, Rows: rows, Cols: cols}
	var message string
	for {
		if err := renderer.Render(out, frame); err != nil {
			return err
		}
		if message != "" {
			fmt.Fprintln(out, message)
		}
		fmt.Fprintf(out, "%s> ", g.CurrentPlayer().Color())

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			line = l
		}

		cmd, err := client.HandleUserInput(line, g.CurrentPlayer())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			frame.Trail = nil
			message = err.Error()
			continue
		}

		shot := client.Shoot(g, cmd, cfg.TimeStep)
		frame.Trail = shot.Trail
		if reports != nil {
			if err := reports.Write(shot); err != nil {
				return err
			}
		}

		message = summary(shot)
		if shot.Hit {
			slog.Info("hit",
				slog.String("shooter", shot.Shooter.Color()),
				slog.Int("score", shot.Shooter.Score()),
			)
		}

		if winner, ok := client.Winner(g, cfg.WinningScore); ok {
			if err := renderer.Render(out, frame); err != nil {
				return err
			}
			loser := shot.Target
			if winner == shot.Target {
				loser = shot.Shooter
			}
			fmt.Fprintln(out, message)
			fmt.Fprintf(out, "%s wins %d - %d\n", winner.Color(), winner.Score(), loser.Score())
			return nil
		}
	}
}

// readLines feeds lines from in until it is exhausted or ctx is done. A
// reader blocked in Read only notices ctx on its next line.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func summary(shot client.Shot) string {
	if shot.Hit {
		return fmt.Sprintf("%s hit %s!", shot.Shooter.Color(), shot.Target.Color())
	}
	side := "short of"
	if (shot.Distance > 0) == shot.Target.Reversed() {
		side = "past"
	}
	return fmt.Sprintf("%s missed, %.1f %s %s", shot.Shooter.Color(), math.Abs(shot.Distance), side, shot.Target.Color())
}
