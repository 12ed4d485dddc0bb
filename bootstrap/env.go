package bootstrap

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	CorsOrigins           string `mapstructure:"CORS_ORIGINS"`
	MongoDBURL            string `mapstructure:"MONGO_DB_URL"`
	DBName                string `mapstructure:"DB_NAME"`
	DBTransactions        bool   `mapstructure:"DB_TRANSACTIONS"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AdminUsername         string `mapstructure:"ADMIN_USERNAME"`
	AdminEmail            string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword         string `mapstructure:"ADMIN_PASSWORD"`
}

var ErrMissingTokenSecret = errors.New("ACCESS_TOKEN_SECRET must be set")

var envDefaults = map[string]any{
	"APP_ENV":                  "production",
	"SERVER_ADDRESS":           ":8080",
	"CONTEXT_TIMEOUT":          10,
	"LOG_LEVEL":                "info",
	"CORS_ORIGINS":             "*",
	"MONGO_DB_URL":             "mongodb://localhost:27017",
	"DB_NAME":                  "portfolio",
	"DB_TRANSACTIONS":          false,
	"ACCESS_TOKEN_SECRET":      "",
	"ACCESS_TOKEN_EXPIRY_HOUR": 2,
	"ADMIN_USERNAME":           "",
	"ADMIN_EMAIL":              "",
	"ADMIN_PASSWORD":           "",
}

// NewEnv loads configuration from the dotenv file at path, if present, and
// from the process environment. Environment variables win.
func NewEnv(path string) (*Env, error) {
	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else {
			log.Debug().Str("path", path).Msg("no env file found, using environment only")
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}

	if env.AccessTokenSecret == "" {
		return nil, ErrMissingTokenSecret
	}
	if env.ContextTimeout <= 0 {
		env.ContextTimeout = envDefaults["CONTEXT_TIMEOUT"].(int)
	}
	if env.AccessTokenExpiryHour <= 0 {
		env.AccessTokenExpiryHour = envDefaults["ACCESS_TOKEN_EXPIRY_HOUR"].(int)
	}
	return &env, nil
}

func (e *Env) IsDevelopment() bool {
	return e.AppEnv == "development"
}
