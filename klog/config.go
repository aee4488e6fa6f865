package klog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/urban233/kern-comm-lib/status"
)

// Config describes the logging setup loaded from a YAML file.
type Config struct {
	// Program names the process; the file handler writes <dir>/<program>.log.
	Program string `yaml:"program"`

	// Dir is the log file directory. Empty disables the file handler.
	Dir string `yaml:"dir"`

	// Level is the minimum severity to record ("info", "warning", "error",
	// "fatal"). Empty keeps everything.
	Level string `yaml:"level"`
}

// LoadConfig reads and validates a YAML logging configuration.
func LoadConfig(path string) status.StatusOr[Config] {
	loaded := status.DoVal(func() (Config, error) {
		var cfg Config
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	})
	if !loaded.Ok() {
		return loaded
	}
	return validate(loaded.Value())
}

func validate(cfg Config) status.StatusOr[Config] {
	if cfg.Program == "" {
		return status.FromStatus[Config](status.InvalidArgumentError("config must specify program"))
	}
	if cfg.Level != "" {
		if _, st := ParseSeverity(cfg.Level); !st.Ok() {
			return status.FromStatus[Config](st)
		}
	}
	return status.Of(cfg)
}

// InitFromConfig initializes the default logger from a loaded configuration.
func InitFromConfig(cfg Config) status.Status {
	if st := Init(cfg.Program, cfg.Dir); !st.Ok() {
		return st
	}
	if cfg.Level != "" {
		sev, st := ParseSeverity(cfg.Level)
		if !st.Ok() {
			return st
		}
		Default().SetMinSeverity(sev)
	}
	return status.OK()
}
