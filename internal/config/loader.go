package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aleksandrpnshkn/gnome-timer/internal/logging"
)

// Load builds the configuration from defaults, an optional gtimer.yaml file
// and GTIMER_* environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetConfigName("gtimer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "gtimer"))
	}
	v.SetEnvPrefix("GTIMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, defaults)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, everything has a default
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		logging.Debugf("loaded configuration from %s\n", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("refresh.interval", defaults.Refresh.Interval)
	v.SetDefault("database.dir", defaults.Database.Dir)
	v.SetDefault("database.filename", defaults.Database.Filename)
	v.SetDefault("database.querytimeout", defaults.Database.QueryTimeout)
	v.SetDefault("database.writetimeout", defaults.Database.WriteTimeout)
	v.SetDefault("notify.enabled", defaults.Notify.Enabled)
	v.SetDefault("notify.command", defaults.Notify.Command)
	v.SetDefault("display.donetext", defaults.Display.DoneText)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.timeoutsec", defaults.Server.TimeoutSec)
	v.SetDefault("server.requestperseclimit", defaults.Server.RequestPerSecLimit)
	v.SetDefault("server.allowedorigins", defaults.Server.AllowedOrigins)
	v.SetDefault("history.enabled", defaults.History.Enabled)
}
