package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode           string        `mapstructure:"mode" validate:"oneof=debug release test"`
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Secret         string        `mapstructure:"secret" validate:"required"`
	ReadLimit      int64         `mapstructure:"read_limit" validate:"gt=0"`
	PingPeriod     time.Duration `mapstructure:"ping_period" validate:"gt=0"`
	PongWait       time.Duration `mapstructure:"pong_wait" validate:"gtfield=PingPeriod"`
	WriteWait      time.Duration `mapstructure:"write_wait" validate:"gt=0"`
	SendBuffer     int           `mapstructure:"send_buffer" validate:"gt=0"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

// AllowAllOrigins is true when the origin list is empty or contains "*".
func (c *Config) AllowAllOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 5000)
	v.SetDefault("log_level", "info")
	v.SetDefault("secret", "relay-secret-change-me")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "25s")
	v.SetDefault("pong_wait", "60s")
	v.SetDefault("write_wait", "10s")
	v.SetDefault("send_buffer", 64)
	v.SetDefault("allowed_origins", []string{"*"})
}

// Load reads .env, then config/config.<CONFIG_ENV>.yaml, then RELAY_*
// variables. A bare PORT, as set by hosting platforms, wins over all.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Info().Str("module", "config").Msg("loaded .env")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("relay")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if port := os.Getenv("PORT"); port != "" {
		v.Set("port", port)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Int("port", cfg.Port).
		Dur("ping_period", cfg.PingPeriod).
		Msg("config ready")
	return &cfg, nil
}
