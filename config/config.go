// Package config holds the generation settings and their defaults.
package config

import (
	"path/filepath"
	"strings"
)

// RouterType selects the router configuration artifact.
type RouterType string

const (
	// UIRouter emits a ui-router $stateProvider configuration.
	UIRouter RouterType = "uiRouter"

	// NgRouter emits an ngRoute $routeProvider configuration.
	NgRouter RouterType = "ngRouter"
)

// Convention selects how names, URLs and the import manifest are derived.
type Convention string

const (
	// Kebab names routes with the kebab-cased directory path, uses the
	// directory path as URL and builds the import manifest from routes.
	Kebab Convention = "kebab"

	// Camel names routes with the camelCased directory path (falling back to
	// the file name for root-level files), strips URLBase from URLs and builds
	// the import manifest from every matched file.
	Camel Convention = "camel"
)

// Defaults for unset Config fields.
const (
	DefaultRoot       = "./"
	DefaultComponent  = "**/*{Controller,Component}.js"
	DefaultTemplate   = "*.html"
	DefaultRouterType = UIRouter
	DefaultConvention = Kebab

	// DefaultImportConfigName is joined with Root when ImportConfig is unset.
	DefaultImportConfigName = "importConfig.js"
)

// Config describes one generation pass. Every field is optional.
type Config struct {
	// Root is the directory scanned for components.
	Root string `mapstructure:"root" yaml:"root"`

	// Component is the glob, relative to Root, matching component files.
	Component string `mapstructure:"component" yaml:"component"`

	// Template is the glob, relative to a component's directory, matching
	// its template.
	Template string `mapstructure:"template" yaml:"template"`

	// URLBase is removed from the front of generated URLs (camel convention).
	URLBase string `mapstructure:"urlBase" yaml:"urlBase,omitempty"`

	RouterType RouterType `mapstructure:"routerType" yaml:"routerType"`
	Convention Convention `mapstructure:"convention" yaml:"convention"`

	// ImportConfig is the output path of the import manifest.
	// Default: <Root>/importConfig.js
	ImportConfig string `mapstructure:"importConfig" yaml:"importConfig,omitempty"`

	// RouterConfig is the output path of the router configuration.
	// Default: <Root>/routerConfig<RouterType>.js, e.g. routerConfigUiRouter.js
	RouterConfig string `mapstructure:"routerConfig" yaml:"routerConfig,omitempty"`

	// TemplatesDir overrides the built-in artifact templates. Files are
	// looked up as <TemplatesDir>/<name>.tmpl.
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`
}

// Default returns a Config with every defaultable field populated.
func Default() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of c where every zero field is replaced by its
// default. Fields that are already set are never overridden.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Component == "" {
		c.Component = DefaultComponent
	}
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.RouterType == "" {
		c.RouterType = DefaultRouterType
	}
	if c.Convention == "" {
		c.Convention = DefaultConvention
	}
	if c.ImportConfig == "" {
		c.ImportConfig = filepath.Join(c.Root, DefaultImportConfigName)
	}
	if c.RouterConfig == "" {
		c.RouterConfig = filepath.Join(c.Root, RouterConfigName(c.RouterType))
	}
	return c
}

// RouterConfigName is the default file name of the router configuration for
// a router type: "uiRouter" → "routerConfigUiRouter.js".
func RouterConfigName(rt RouterType) string {
	name := string(rt)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return "routerConfig" + name + ".js"
}
