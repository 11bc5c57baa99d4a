package codegen

import (
	"fmt"
	"path/filepath"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/conventions"
	"github.com/rafbgarcia/ngconventions/internal/logging"
	"github.com/rafbgarcia/ngconventions/internal/scan"
)

// globCacheSize bounds the per-pass glob cache. Template lookups repeat for
// every component that shares a directory.
const globCacheSize = 512

// Option customizes a Resolver or Generator.
type Option func(*options)

type options struct {
	glob scan.Globber
	log  *logging.Logger
}

// WithGlobber replaces the file system scanner.
func WithGlobber(g scan.Globber) Option {
	return func(o *options) { o.glob = g }
}

// WithLogger sets the logger used for warnings and progress.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{log: logging.NewDefault()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolver maps component files to routes for one Config. It holds no state
// between Resolve calls.
type Resolver struct {
	cfg  config.Config
	conv Convention
	glob scan.Globber
	log  *logging.Logger
}

// NewResolver creates a Resolver for cfg. Unset fields of cfg take their
// defaults.
func NewResolver(cfg config.Config, opts ...Option) (*Resolver, error) {
	cfg = cfg.WithDefaults()
	conv, err := ConventionFor(cfg)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &Resolver{
		cfg:  cfg,
		conv: conv,
		glob: o.glob,
		log:  o.log.With("root", cfg.Root),
	}, nil
}

// Config returns the defaulted configuration the Resolver runs with.
func (r *Resolver) Config() config.Config {
	return r.cfg
}

// Convention returns the naming strategy selected by the configuration.
func (r *Resolver) Convention() Convention {
	return r.conv
}

// Resolve enumerates component files and returns the routes that have a
// template. Route order follows the scanner's enumeration order.
func (r *Resolver) Resolve() (Resolution, error) {
	glob, err := r.globber()
	if err != nil {
		return Resolution{}, err
	}

	pattern := conventions.GlobPattern(r.cfg.Root, r.cfg.Component)
	files, err := glob.Glob(pattern)
	if err != nil {
		return Resolution{}, fmt.Errorf("finding components: %w", err)
	}
	r.log.Debug("components found", "pattern", pattern, "count", len(files))

	res := Resolution{Files: make([]string, 0, len(files))}
	candidates := make([]Route, 0, len(files))
	for _, file := range files {
		route, warnings, err := r.candidate(glob, file)
		if err != nil {
			return Resolution{}, err
		}
		res.Warnings = append(res.Warnings, warnings...)
		res.Files = append(res.Files, conventions.RelativeToRoot(r.cfg.Root, file))
		candidates = append(candidates, route)
	}

	res.Routes = make([]Route, 0, len(candidates))
	for i, route := range candidates {
		if route.Template == "" {
			w := Warning{Kind: MissingTemplate, Route: route.Name, File: res.Files[i]}
			r.log.Warn(w.String(), "file", w.File)
			res.Warnings = append(res.Warnings, w)
			continue
		}
		res.Routes = append(res.Routes, route)
	}
	return res, nil
}

// candidate builds the route for one component file. Template may be empty.
func (r *Resolver) candidate(glob scan.Globber, file string) (Route, []Warning, error) {
	relDir := conventions.RelativeToRoot(r.cfg.Root, filepath.Dir(file))
	rel := conventions.RelativeToRoot(r.cfg.Root, file)

	var warnings []Warning
	name := r.conv.DeriveName(file, relDir)
	if name == "" {
		w := Warning{Kind: EmptyName, File: rel}
		r.log.Warn(w.String(), "convention", r.cfg.Convention)
		warnings = append(warnings, w)
	}
	controller, component := r.conv.Reference(rel, name)

	template, warning, err := r.matchTemplate(glob, file, name)
	if err != nil {
		return Route{}, nil, err
	}
	if warning != nil {
		warnings = append(warnings, *warning)
	}
	return Route{
		Name:       name,
		URL:        r.conv.URL(relDir),
		Controller: controller,
		Component:  component,
		Template:   template,
	}, warnings, nil
}

func (r *Resolver) globber() (scan.Globber, error) {
	if r.glob != nil {
		return r.glob, nil
	}
	return scan.NewCached(scan.FS{FilesOnly: true}, globCacheSize)
}
