package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ironmaiden/internal/bootstrap"
	"ironmaiden/internal/config"
	"ironmaiden/internal/entity"

	"github.com/fatih/color"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

type options struct {
	generate int
	viewLog  bool
	summary  bool
	asciiMap bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 1. Load Configuration
	cfg := config.Load()

	fs := flag.NewFlagSet("simulator", flag.ContinueOnError)
	fs.SetOutput(stdout)
	opts := options{}
	fs.IntVar(&opts.generate, "generate", 0, "Generate N fake IMSI-catcher events")
	fs.BoolVar(&opts.viewLog, "view-log", false, "View the event log")
	fs.BoolVar(&opts.summary, "summary", false, "Print a summary of events")
	fs.BoolVar(&opts.asciiMap, "ascii-map", false, "Show a random ASCII map of event locations")
	fs.StringVar(&cfg.EventLog.Path, "log-file", cfg.EventLog.Path, "Path of the event log")
	fs.DurationVar(&cfg.Generator.Delay, "delay", cfg.Generator.Delay, "Pause between generated events")
	fs.Int64Var(&cfg.Generator.Seed, "seed", cfg.Generator.Seed, "Random seed (0 seeds from the clock)")
	fs.StringVar(&cfg.Metrics.FilePath, "metrics-file", cfg.Metrics.FilePath, "Write Prometheus metrics to this file")
	fs.BoolVar(&cfg.App.Verbose, "verbose", cfg.App.Verbose, "Mirror diagnostic logs to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "IronMaiden IMSI-Catcher Simulator %s\n\nUsage:\n", Version)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		fail(stderr, fmt.Errorf("%w: %s", entity.ErrUnknownCommand, fs.Arg(0)))
		fs.Usage()
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg, stdout, bootstrap.Dependencies{})
	if err != nil {
		fail(stderr, err)
		return 1
	}
	defer container.Close()

	// 3. Dispatch exactly one command
	c := container.Controller
	switch {
	case isSet(fs, "generate"):
		err = c.Generate(ctx, opts.generate)
	case opts.viewLog:
		err = c.ViewLog(ctx)
	case opts.summary:
		err = c.Summary(ctx)
	case opts.asciiMap:
		err = c.AsciiMap(ctx)
	default:
		fs.Usage()
		return 0
	}

	if err != nil {
		container.Logger.Error("SIMULATOR", "Command failed", map[string]interface{}{
			"error":  err.Error(),
			"run_id": container.RunId,
		})
		fail(stderr, err)
		return 1
	}
	return 0
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func fail(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "error: %v\n", err)
}
