package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-solo/internal/cmd"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command line.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf := initConfig()

	logFile, logger := initLogger(conf)
	defer logFile.Close()

	root := cmd.Root(logger, conf)
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}

	return nil
}

// initialize config.
func initConfig() *config.Config {
	path := config.DefaultPath()
	if env, ok := os.LookupEnv("TICTACTOE_CONFIG"); ok {
		path = env
	}

	return config.MustLoad(path)
}

// initialize logger. Logs go to a file so they do not mix with the board.
func initLogger(conf *config.Config) (io.Closer, *slog.Logger) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	path := conf.LogFile
	if path == "" {
		var err error
		if path, err = config.DefaultLogFile(); err != nil {
			panic(err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file, slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
}
