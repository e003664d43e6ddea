// Package main provides the video player entry point.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/app/player"
	"github.com/arturybak/google-coding-challenge/internal/cli"
	"github.com/arturybak/google-coding-challenge/internal/infra/catalog"
	"github.com/arturybak/google-coding-challenge/internal/infra/config"
	"github.com/arturybak/google-coding-challenge/internal/infra/logger"
)

var (
	app         = kingpin.New("videoplayer", "In-memory video library browser")
	configPath  = app.Flag("config", "Path to config file").Default(config.DefaultPath).String()
	libraryPath = app.Flag("library", "Path to a video library file (overrides config)").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile     = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// list-commands command
	listCommandsCmd = app.Command("list-commands", "List available shell commands and exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the interactive player (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Handle list-commands command
	if command == listCommandsCmd.FullCommand() {
		printCommands()
		return
	}

	// Initialize logger
	loggerConfig := logger.Config{
		Output: "stderr",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
		loggerConfig.File = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}
	if *libraryPath != "" {
		cfg.Catalog.Source = config.SourceConfig{
			Type:     "file",
			Settings: map[string]any{"path": *libraryPath},
		}
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Player error: %v", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file. A missing file at the default path is
// fine and yields the built-in defaults; an explicitly given path must
// exist.
func loadConfig(path string) (*config.Config, error) {
	if path == config.DefaultPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			zlog.Info().Msgf("No config file at %s, using defaults", path)
			return config.Default()
		}
	}
	zlog.Info().Msgf("Loading config from %s", path)
	return config.Load(path)
}

// run wires the library, console, player and shell, then hands control to
// the interactive loop.
func run(cfg *config.Config) error {
	library, err := catalog.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create video library: %w", err)
	}
	zlog.Info().Msgf("Video library ready: videos=%d", library.Count())

	console := cli.NewConsole(os.Stdin, os.Stdout)
	shell := cli.NewShell(console, player.New(library, console), cfg.Shell.Prompt)
	return shell.Run()
}

// printCommands prints the shell command table.
func printCommands() {
	fmt.Println("Available Commands:")
	for _, cmd := range cli.Commands() {
		fmt.Printf("  %-44s - %s\n", cmd.Usage(), cmd.Help)
	}
}
