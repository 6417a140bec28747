package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const appName = "tictactoe"

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile   string        `yaml:"log-file" env:"LOG_FILE"`
	HumanMark string        `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X" validate:"oneof=X O x o"`
	MoveDelay time.Duration `yaml:"move-delay" env:"MOVE_DELAY" env-default:"1s" validate:"min=0,max=10s"`
	NoColor   bool          `yaml:"no-color" env:"NO_COLOR"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultPath - $XDG_CONFIG_HOME/tictactoe/config.yml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yml")
}

// DefaultLogFile - $XDG_STATE_HOME/tictactoe/tictactoe.log, directories created on demand.
func DefaultLogFile() (string, error) {
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", fmt.Errorf("unable to resolve log file: %w", err)
	}

	return path, nil
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
