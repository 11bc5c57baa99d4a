// Package ngconventions generates AngularJS route configuration from a
// project's directory conventions.
//
// Every file matched by Config.Component becomes a route named after its
// directory, paired with the template sitting next to it:
//
//	feature1/feature1Controller.js  ┐
//	feature1/feature1.html          ┴→ {name: "feature-1", url: "/feature1", ...}
//
// Generate writes an ES2015 import manifest that registers each controller
// and a ui-router or ngRoute configuration that registers each route.
package ngconventions

import (
	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/codegen"
	"github.com/rafbgarcia/ngconventions/internal/logging"
)

// Types of the generation pass, usable by callers outside this module.
type (
	Route           = codegen.Route
	ImportStatement = codegen.ImportStatement
	Warning         = codegen.Warning
	Resolution      = codegen.Resolution
	GenerateResult  = codegen.GenerateResult
)

var (
	ErrUnknownRouterType = codegen.ErrUnknownRouterType
	ErrUnknownConvention = codegen.ErrUnknownConvention
)

// GenerateRoutes resolves the route table for cfg without writing anything.
// Warnings are logged to stderr.
func GenerateRoutes(cfg config.Config) ([]Route, error) {
	res, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return res.Routes, nil
}

// Resolve is like GenerateRoutes but also returns the matched files and the
// warnings raised along the way.
func Resolve(cfg config.Config) (Resolution, error) {
	r, err := codegen.NewResolver(cfg, codegen.WithLogger(logging.NewDefault()))
	if err != nil {
		return Resolution{}, err
	}
	return r.Resolve()
}

// Generate resolves the route table for cfg and writes the import manifest
// and the router configuration.
func Generate(cfg config.Config) (GenerateResult, error) {
	g, err := codegen.NewGenerator(cfg, codegen.WithLogger(logging.NewDefault()))
	if err != nil {
		return GenerateResult{}, err
	}
	return g.Generate()
}
