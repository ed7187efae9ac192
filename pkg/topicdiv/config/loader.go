package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TOPICDIV_TOP_N.
const EnvPrefix = "TOPICDIV"

// Loader reads configuration from an optional YAML file, an optional .env
// file and the environment. Later sources win: defaults, file, .env, then the
// process environment.
type Loader struct {
	ConfigPath string
	EnvFile    string
}

// Load resolves the configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if l.ConfigPath != "" {
		v.SetConfigFile(l.ConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.ConfigPath, err)
		}
	}

	if l.EnvFile != "" {
		dotenv, err := godotenv.Read(l.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", l.EnvFile, err)
		}
		for name, value := range dotenv {
			key, ok := keyForEnv(name)
			if !ok {
				continue
			}
			if _, set := os.LookupEnv(name); set {
				continue
			}
			v.Set(key, value)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("raw_dir", d.RawDir)
	v.SetDefault("processed_path", d.ProcessedPath)
	v.SetDefault("extension", d.Extension)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("model_kind", d.ModelKind)
	v.SetDefault("store_path", d.StorePath)
	v.SetDefault("log_level", d.LogLevel)
}

// keyForEnv maps TOPICDIV_TOP_N to top_n.
func keyForEnv(name string) (string, bool) {
	prefix := EnvPrefix + "_"
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(name, prefix)), true
}
