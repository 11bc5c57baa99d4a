package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/jscheck"
	"github.com/rafbgarcia/ngconventions/internal/logging"
	"github.com/rafbgarcia/ngconventions/renderer"
)

// GenerateResult holds the output of a generation pass.
type GenerateResult struct {
	Resolution
	ImportConfig string // path written for the import manifest
	RouterConfig string // path written for the router configuration
}

// RouteCount is the number of routes in the router configuration.
func (r GenerateResult) RouteCount() int {
	return len(r.Routes)
}

// Generator resolves routes and writes both artifacts.
type Generator struct {
	resolver *Resolver
	renderer *renderer.Renderer
	log      *logging.Logger
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg config.Config, opts ...Option) (*Generator, error) {
	resolver, err := NewResolver(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Generator{
		resolver: resolver,
		renderer: renderer.New(resolver.cfg.TemplatesDir),
		log:      resolver.log,
	}, nil
}

// Generate runs a full pass: resolve routes, then write the import manifest,
// then write the router configuration. The two artifacts are independent: a
// router configuration that cannot be produced does not stop the import
// manifest from being written. Nothing is cleaned up on failure.
func (g *Generator) Generate() (GenerateResult, error) {
	res, err := g.resolver.Resolve()
	if err != nil {
		return GenerateResult{}, err
	}
	result := GenerateResult{Resolution: res}

	importPath, err := g.WriteImportConfig(res)
	if err != nil {
		return result, err
	}
	result.ImportConfig = importPath

	routerPath, err := g.WriteRouterConfig(res)
	if err != nil {
		return result, err
	}
	result.RouterConfig = routerPath

	return result, nil
}

// WriteImportConfig renders the import manifest for res and writes it.
func (g *Generator) WriteImportConfig(res Resolution) (string, error) {
	cfg := g.resolver.cfg
	statements := g.resolver.conv.Manifest(res)

	data := struct{ ImportStatements []ImportStatement }{statements}
	if err := g.writeArtifact(cfg.ImportConfig, renderer.ImportConfigES2015, data); err != nil {
		return "", err
	}
	g.log.Info("import manifest written", "path", cfg.ImportConfig, "imports", len(statements))
	return cfg.ImportConfig, nil
}

// WriteRouterConfig renders the router configuration for res and writes it.
func (g *Generator) WriteRouterConfig(res Resolution) (string, error) {
	cfg := g.resolver.cfg
	name, err := SelectTemplate(cfg.RouterType)
	if err != nil {
		return "", err
	}

	routes := res.Routes
	if routes == nil {
		routes = []Route{}
	}
	data := struct{ Routes []Route }{routes}
	if err := g.writeArtifact(cfg.RouterConfig, name, data); err != nil {
		return "", err
	}
	g.log.Info("router config written", "path", cfg.RouterConfig, "routerType", cfg.RouterType, "routes", len(routes))
	return cfg.RouterConfig, nil
}

// writeArtifact renders a template, checks that the output parses and writes
// it to path, creating parent directories.
func (g *Generator) writeArtifact(path, tmpl string, data any) error {
	out, err := g.renderer.Render(tmpl, data)
	if err != nil {
		return err
	}
	if err := jscheck.Check(filepath.Base(path), out); err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
