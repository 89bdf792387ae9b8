package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// DBConfig holds the store database connection parameters.
type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
}

// LogConfig controls the operational log sink. Console output stays plain
// text, so file logging is the default mode.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// AppConfig is the full application configuration.
type AppConfig struct {
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

// DefaultConfig returns the configuration matching the legacy 'tiendadam'
// deployment.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Database: DBConfig{
			Type:   "mysql",
			Host:   "localhost",
			Port:   3306,
			Name:   "tiendadam",
			User:   "tiendadam",
			Passwd: "Tiendadam123$",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "storepanel.log",
		},
	}
}

func setEnvValue(name string, f func(v string)) {
	if evalue := os.Getenv(name); evalue != "" {
		f(evalue)
	}
}

// LoadConfig reads the YAML configuration file at path, falling back to
// defaults when the file does not exist. STOREPANEL_* environment variables
// override file values.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no file, defaults apply
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	setEnvValue("STOREPANEL_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("STOREPANEL_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("STOREPANEL_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("STOREPANEL_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("STOREPANEL_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("STOREPANEL_DB_PASSWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("STOREPANEL_LOG_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("STOREPANEL_LOG_FILE_ENABLE", func(v string) { cfg.Logger.FileEnable = cast.ToBool(v) })
	setEnvValue("STOREPANEL_LOG_FILENAME", func(v string) { cfg.Logger.Filename = v })

	return cfg, nil
}
