package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Timer    TimerConfig    `yaml:"timer"`
	Database DatabaseConfig `yaml:"database"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type TimerConfig struct {
	// Duration of a timer run started from the UI.
	Duration time.Duration `yaml:"duration"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Countdown",
			WindowWidth:  360,
			WindowHeight: 420,
		},
		Timer: TimerConfig{
			Duration: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "countdown.db",
		},
		Theme: ThemeConfig{
			DarkMode: false,
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads the config from the user's config directory, writing the
// defaults there on first run.
func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt is NewManager with an explicit config file path.
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return errors.Wrap(err, "parse config")
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

// DatabasePath resolves the database location relative to the config dir
// when the configured path is not absolute.
func (m *Manager) DatabasePath() string {
	path := m.config.Database.Path
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(m.configPath), path)
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".countdown"), nil
}
