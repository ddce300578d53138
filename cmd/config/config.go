package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvironmentLocal = "local"

	_envPrefix        = "consignment_server"
	_configName       = "server"
	_configPathFlag   = "config-path"
	_localJWTSecret   = "local-development-secret"
	_defaultLogLevel  = "info"
	_defaultAddress   = ":3000"
	_defaultTimeout   = 5 * time.Second
	_defaultTTL       = 12 * time.Hour
	_defaultEndpoint  = "localhost:4317"
	_defaultOperator  = "admin"
	_defaultSQLLevel  = "warn"
	_defaultEnvString = "production"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads the process configuration once, from flags, config file and
// environment. It panics when the configuration cannot be loaded.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		flags := pflag.NewFlagSet("consignment-server", pflag.ExitOnError)
		RegisterFlags(flags)
		_ = flags.Parse(os.Args[1:])

		config, err := Load(viper.New(), flags)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(_configPathFlag, "", "directory containing server.yaml")
	flags.String("http-address", _defaultAddress, "address the http server listens on")
	flags.String("log-level", _defaultLogLevel, "debug, info, warn or error")
}

// Load resolves the configuration into v. Values set through flags win over
// environment variables, which win over the config file.
func Load(v *viper.Viper, flags *pflag.FlagSet) (AppConfig, error) {
	setDefaults(v)

	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := bindFlags(v, flags); err != nil {
		return AppConfig{}, err
	}

	v.SetConfigName(_configName)
	if flags != nil {
		if path, err := flags.GetString(_configPathFlag); err == nil && path != "" {
			v.AddConfigPath(path)
		}
	}
	v.AddConfigPath("config")
	v.AddConfigPath("/config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	config := AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			DSN:          v.GetString("database.dsn"),
			URL:          v.GetString("database.url"),
			LogLevel:     v.GetString("database.log_level"),
			QueryTimeout: v.GetDuration("database.query_timeout"),
		},
		Auth: AuthConfig{
			JWTSecret:        v.GetString("auth.jwt_secret"),
			SessionTTL:       v.GetDuration("auth.session_ttl"),
			OperatorUsername: v.GetString("auth.operator_username"),
			OperatorPassword: v.GetString("auth.operator_password"),
		},
		Otel: OtelConfig{
			Enabled:  v.GetBool("otel.enabled"),
			Endpoint: v.GetString("otel.endpoint"),
		},
	}

	if config.Auth.JWTSecret == "" && config.IsLocal() {
		config.Auth.JWTSecret = _localJWTSecret
	}

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", _defaultLogLevel)
	v.SetDefault("general.environment", _defaultEnvString)
	v.SetDefault("http.address", _defaultAddress)
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("database.log_level", _defaultSQLLevel)
	v.SetDefault("database.query_timeout", _defaultTimeout)
	v.SetDefault("auth.session_ttl", _defaultTTL)
	v.SetDefault("auth.operator_username", _defaultOperator)
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", _defaultEndpoint)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	bindings := map[string]string{
		"http.address":      "http-address",
		"general.log_level": "log-level",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	return nil
}

type AppConfig struct {
	General  GeneralConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Otel     OtelConfig
}

func (c AppConfig) IsLocal() bool {
	return c.General.Environment == EnvironmentLocal
}

func (c AppConfig) Validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if !c.IsLocal() && c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required outside the local environment"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("auth.session_ttl must be positive"))
	}
	return errors.Join(errs...)
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	DSN          string
	URL          string
	LogLevel     string
	QueryTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret        string
	SessionTTL       time.Duration
	OperatorUsername string
	OperatorPassword string
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}
