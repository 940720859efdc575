// Package config loads the service configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage configures the on-disk bucket that backs the key-value store.
	Storage struct {
		Path string `json:"path" yaml:"path"`
	} `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
		Admin  string `json:"admin" yaml:"admin"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin is the single fixed operator credential for the admin panel.
	// It is deliberately disjoint from the customer accounts.
	Admin *AdminConfig `json:"admin" yaml:"admin" mapstructure:"admin"`

	// Telegram configures the order notification channel. With an empty
	// bot token the notifier logs the rendered message instead of sending.
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	AdminTokenTTL     time.Duration `json:"adminTokenTtl" yaml:"adminTokenTtl"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// AdminConfig holds the operator credential pair.
type AdminConfig struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// TelegramConfig defines the Telegram Bot API settings for order notifications.
type TelegramConfig struct {
	BotToken string        `json:"botToken" yaml:"botToken"`
	ChatID   string        `json:"chatId" yaml:"chatId"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New loads the configuration for the environment named by APP_ENV
// (default "local") from the working directory.
func New() (*Config, error) {
	currEnv := os.Getenv("APP_ENV")
	if currEnv == "" {
		currEnv = "local"
	}

	return LoadWithEnv[Config](currEnv)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a dotted path and align each segment
			// with the existing YAML keys, e.g. SECRETKEY_ACCESS -> secretKey.access.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides.
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// canonicalizeEnvKey converts an environment variable name into a dotted
// config path, reusing the casing of keys that already exist in the YAML map.
func canonicalizeEnvKey(envKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(envKey), "_")

	var out []string
	current := existing
	for _, seg := range segments {
		matched := seg
		next := map[string]any(nil)
		for key, val := range current {
			if strings.EqualFold(key, seg) {
				matched = key
				if nested, ok := val.(map[string]any); ok {
					next = nested
				}

				break
			}
		}
		current = next
		out = append(out, matched)
	}

	return strings.Join(out, ".")
}
