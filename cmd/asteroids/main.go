// cmd/asteroids/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"

	"github.com/opd-ai/go-asteroids/pkg/audio"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	ebitenrender "github.com/opd-ai/go-asteroids/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

type options struct {
	configPath    string
	createDefault bool
	renderer      string
	logPath       string
	logLevel      string
	profileMode   string
	frames        int
	mute          bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file")
	flag.BoolVar(&opts.createDefault, "default", false, "Create default configuration file and exit")
	flag.StringVar(&opts.renderer, "renderer", "terminal", "Frontend: 'terminal', 'engo', 'ebiten' or 'null'")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file (terminal frontend discards logs otherwise)")
	flag.StringVar(&opts.logLevel, "log-level", os.Getenv(logging.LevelEnvVar), "Log level: DEBUG, INFO, WARN or ERROR")
	flag.StringVar(&opts.profileMode, "profile", "", "Write a profile to the working directory: 'cpu', 'mem' or 'trace'")
	flag.IntVar(&opts.frames, "frames", 600, "Frames to simulate (null frontend only)")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.Parse()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = logging.WithSessionID(ctx, logging.NewSessionID())

	err = run(ctx, opts, logger)
	stop()
	if err != nil {
		logger.Error(ctx, "asteroids failed", err, "renderer", opts.renderer)
		closeLog()
		if opts.renderer == "terminal" && opts.logPath == "" {
			fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		}
		os.Exit(1)
	}
	closeLog()
}

// newLogger picks the log destination. The terminal frontend owns the
// screen, so it only logs when given a file.
func newLogger(opts options) (*logging.Logger, func(), error) {
	level := logging.ParseLevel(opts.logLevel)
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewLoggerWithWriter(f, level), func() { f.Close() }, nil
	}
	if opts.renderer == "terminal" {
		return logging.Discard(), func() {}, nil
	}
	return logging.NewLoggerWithWriter(os.Stderr, level), func() {}, nil
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			return logging.WrapError(err, "failed to create default configuration")
		}
		logger.Info(ctx, "Created default configuration file", "config_path", opts.configPath)
		return nil
	}

	gameConfig, err := loadConfig(ctx, opts.configPath, logger)
	if err != nil {
		return err
	}

	if stopProfile := startProfile(opts.profileMode); stopProfile != nil {
		defer stopProfile()
	}

	eventBus := event.NewEventBus()
	if !opts.mute && opts.renderer != "null" {
		player := audio.NewPlayer(logger)
		if err := player.Initialize(); err != nil {
			logger.Warn(ctx, "Sound disabled", "error", err)
		} else {
			player.Attach(eventBus)
			defer player.Close()
		}
	}

	game := engine.NewGame(gameConfig, eventBus, logger)

	logger.Info(ctx, "Starting asteroids",
		"renderer", opts.renderer,
		"seed", gameConfig.Asteroids.Seed,
	)

	switch opts.renderer {
	case "engo":
		engorender.Run(ctx, game, gameConfig, logger)
		return nil
	case "ebiten":
		return ebitenrender.Run(ctx, game, gameConfig, logger)
	case "null":
		runHeadless(ctx, game, opts.frames, logger)
		return nil
	case "terminal":
		return runTerminal(ctx, game, gameConfig, logger)
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}

// loadConfig reads path if it exists, otherwise the defaults, then applies
// environment overrides and validates the result.
func loadConfig(ctx context.Context, path string, logger *logging.Logger) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, logging.WrapError(err, "failed to load configuration from %s", path)
		}
	}

	if err := config.ApplyEnvOverrides(gameConfig); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, err
	}
	return gameConfig, nil
}

// startProfile starts the requested profiler and returns its stop
// function, or nil when profiling is off.
func startProfile(mode string) func() {
	var kind func(*profile.Profile)
	switch mode {
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfileAllocs
	case "trace":
		kind = profile.TraceProfile
	default:
		return nil
	}
	p := profile.Start(kind, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop
}
