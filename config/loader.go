package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. NGCONV_ROUTERTYPE=ngRouter.
const EnvPrefix = "NGCONV"

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "ngconventions.yaml"

var keys = []string{
	"root",
	"component",
	"template",
	"urlBase",
	"routerType",
	"convention",
	"importConfig",
	"routerConfig",
	"templatesDir",
}

// Loader reads a Config from a YAML file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with environment bindings and the static
// defaults registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("root", DefaultRoot)
	v.SetDefault("component", DefaultComponent)
	v.SetDefault("template", DefaultTemplate)
	v.SetDefault("routerType", string(DefaultRouterType))
	v.SetDefault("convention", string(DefaultConvention))

	return &Loader{v: v}
}

// Load reads configFile (or DefaultFile when empty) and returns the merged,
// fully defaulted Config. A missing file is not an error; an explicitly named
// file that cannot be read is.
func (l *Loader) Load(configFile string) (Config, error) {
	return l.LoadWith(configFile, nil)
}

// LoadWith is like Load but calls override on the merged values before
// defaults are applied, so derived defaults (the output paths) follow the
// overridden root and router type.
func (l *Loader) LoadWith(configFile string, override func(*Config)) (Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultFile
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if override != nil {
		override(&cfg)
	}
	return cfg.WithDefaults(), nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
