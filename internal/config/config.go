package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/jwalitptl/clinic-cli/pkg/validator"
)

const envPrefix = "CLINIC"

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"-"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"min=1,max=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required"`
	SSLMode  string `mapstructure:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// LogConfig is read from CLINIC_LOG_* environment variables only.
type LogConfig struct {
	Level      string `envconfig:"LEVEL" default:"warn"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// Args are the positional command line arguments: <dbname> <port> <user>.
type Args struct {
	Name string
	Port string
	User string
}

// ParseArgs checks the positional argument count.
func ParseArgs(args []string) (Args, error) {
	if len(args) != 3 {
		return Args{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	return Args{Name: args[0], Port: args[1], User: args[2]}, nil
}

// LoadConfig merges defaults, an optional clinic.yaml, CLINIC_* environment
// variables and finally the command line arguments, which always win.
func LoadConfig(args Args, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("clinic")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", "disable")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	port, err := strconv.Atoi(args.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", args.Port, err)
	}
	cfg.Database.Name = args.Name
	cfg.Database.Port = port
	cfg.Database.User = args.User

	if err := envconfig.Process(envPrefix+"_LOG", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to read log settings: %w", err)
	}

	if err := validator.New().Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DSN renders the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s sslmode=%s",
		quoteDSN(c.Host),
		c.Port,
		quoteDSN(c.User),
		quoteDSN(c.Name),
		quoteDSN(c.SSLMode),
	)
	if c.Password != "" {
		dsn += fmt.Sprintf(" password=%s", quoteDSN(c.Password))
	}
	return dsn
}

// URL is the display form printed while connecting; it carries no password.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgresql://%s:%d/%s", c.Host, c.Port, c.Name)
}

// quoteDSN quotes a lib/pq key/value setting when it is empty or holds a
// space, quote or backslash.
func quoteDSN(s string) string {
	if s != "" && !strings.ContainsAny(s, ` '\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
