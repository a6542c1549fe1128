package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	Port     string `envconfig:"APP_PORT" default:"8000"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"mysql"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"3306"`
	User     string `envconfig:"DB_USER" default:"occurrence"`
	Password string `envconfig:"DB_PASSWORD" default:"occurrence"`
	Name     string `envconfig:"DB_NAME" default:"occurrence_api"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	// Path is only used by the sqlite driver.
	Path string `envconfig:"DB_PATH" default:"occurrence.db"`
}

// DashboardConfig holds the dashboard fields that are not computed yet.
// They ship as configuration so deployments can adjust them without a
// rebuild until real sources exist.
type DashboardConfig struct {
	AvailableVehicles int    `envconfig:"DASHBOARD_AVAILABLE_VEHICLES" default:"2"`
	TeamStatus        string `envconfig:"DASHBOARD_TEAM_STATUS" default:"Operacional"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
