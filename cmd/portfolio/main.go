package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devfolio/portfolio-api/internal/app"
	"github.com/devfolio/portfolio-api/internal/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Usage = usage
	flag.Parse()

	// Flags may also follow the subcommand (portfolio serve -config x).
	command, rest := splitCommand(flag.Args())
	if len(rest) > 0 {
		if errParse := flag.CommandLine.Parse(rest); errParse != nil {
			os.Exit(2)
		}
	}

	cfg, errLoad := config.Load(*configPath)
	if errLoad != nil {
		fmt.Fprintln(os.Stderr, errLoad)
		os.Exit(1)
	}

	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var errRun error
	switch command {
	case "serve":
		errRun = app.RunServer(ctx, cfg)
	case "migrate":
		errRun = app.Migrate(ctx, cfg)
	case "seed":
		errRun = app.Seed(ctx, cfg)
	default:
		usage()
		os.Exit(2)
	}
	if errRun != nil {
		log.WithError(errRun).Fatalf("%s failed", command)
	}
}

// splitCommand separates the subcommand from any trailing flag arguments.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "serve", nil
	}
	return args[0], args[1:]
}

// setupLogging configures logrus level and optional file rotation.
func setupLogging(cfg config.LogConfig) {
	level, errParse := log.ParseLevel(cfg.Level)
	if errParse != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command>

Commands:
  serve    run the API server (default)
  migrate  run database migrations and exit
  seed     insert demo projects and tech stack entries

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}
