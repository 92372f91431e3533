package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-saturnpad/saturnpad/backend"
	"github.com/valerio/go-saturnpad/saturnpad/backend/headless"
	"github.com/valerio/go-saturnpad/saturnpad/backend/terminal"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
	"github.com/valerio/go-saturnpad/saturnpad/sim"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "saturnpad"
	app.Description = "Host simulator for the Saturn pad line adapter"
	app.Usage = "saturnpad [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without the terminal UI and print the final line state",
		},
		cli.IntFlag{
			Name:  "scans",
			Usage: "Number of scans to run (required for headless, 0 = until quit)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "press",
			Usage: "Comma separated buttons held from the start, e.g. up,a,start",
		},
		cli.BoolFlag{
			Name:  "unplugged",
			Usage: "Start with the pad disconnected",
		},
		cli.BoolFlag{
			Name:  "realtime",
			Usage: "Pace headless scans with the real 64us tick instead of running flat out",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Dump every scan at debug level",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error)",
			Value: "info",
		},
		cli.IntFlag{
			Name:  "refresh",
			Usage: "Scans between two display updates",
			Value: sim.DefaultRefresh,
		},
	}
	app.Action = runSimulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running simulator", "error", err)
		os.Exit(1)
	}
}

func runSimulator(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Bool("trace") {
		level = slog.LevelDebug
	}

	held, err := pad.ParseButtons(c.String("press"))
	if err != nil {
		return err
	}

	scans := c.Int("scans")
	if scans < 0 {
		return errors.New("--scans must not be negative")
	}

	config := sim.Config{
		Title:        "Saturn pad adapter",
		LogLevel:     level,
		Scans:        uint64(scans),
		RefreshEvery: c.Int("refresh"),
		Trace:        c.Bool("trace"),
		Press:        held,
		Unplugged:    c.Bool("unplugged"),
	}

	if c.Bool("headless") {
		if scans == 0 {
			return errors.New("headless mode requires --scans option with a positive value")
		}
		return runHeadless(config, c.Bool("realtime"))
	}

	ticker := timing.NewTicker(timing.TickPeriod)
	defer ticker.Stop()

	return sim.New(config, ticker, terminal.New()).Run()
}

func runHeadless(config sim.Config, realtime bool) error {
	var ticks timing.TickSource = &timing.Counter{}
	if realtime {
		flag := timing.NewSoftFlag(timing.TickPeriod)
		defer flag.Stop()
		ticks = timing.NewPolledTimer(flag)
	}

	be := headless.New(0)
	if err := sim.New(config, ticks, be).Run(); err != nil {
		return err
	}
	return report(be.Last())
}

func report(view backend.View) error {
	if err := headless.Report(os.Stdout, view); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
