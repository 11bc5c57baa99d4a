package codegen

import (
	"errors"
	"fmt"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/renderer"
)

// ErrUnknownRouterType is returned when a router type has no template.
var ErrUnknownRouterType = errors.New("unknown router type")

var routerTemplates = map[config.RouterType]string{
	config.UIRouter: renderer.RouterConfigUI,
	config.NgRouter: renderer.RouterConfigNg,
}

// SelectTemplate returns the template that renders the router configuration
// for rt.
func SelectTemplate(rt config.RouterType) (string, error) {
	name, ok := routerTemplates[rt]
	if !ok {
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownRouterType, rt, config.UIRouter, config.NgRouter)
	}
	return name, nil
}
