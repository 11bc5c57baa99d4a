package codegen

import (
	"errors"
	"fmt"
	"path"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/conventions"
)

// ErrUnknownConvention is returned for a Config.Convention with no strategy.
var ErrUnknownConvention = errors.New("unknown convention")

// Convention derives the parts of a route that depend on the naming scheme.
// relDir and rel are root-relative and slash separated; relDir is "" for
// files that sit directly in the root.
type Convention interface {
	// DeriveName returns the route name for a component file.
	DeriveName(file, relDir string) string

	// URL returns the route URL for a component directory.
	URL(relDir string) string

	// Reference returns the controller and component fields of a route.
	Reference(rel, name string) (controller, component string)

	// Manifest builds the import manifest for a resolve pass.
	Manifest(res Resolution) []ImportStatement
}

// ConventionFor returns the strategy selected by cfg.Convention.
func ConventionFor(cfg config.Config) (Convention, error) {
	switch cfg.Convention {
	case config.Kebab:
		return kebab{}, nil
	case config.Camel:
		return camel{urlBase: cfg.URLBase}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownConvention, cfg.Convention, config.Kebab, config.Camel)
	}
}

// kebab: "admin/userList/userListController.js" → name "admin-user-list",
// url "/admin/userList", controller "admin/userList/userListController.js".
type kebab struct{}

func (kebab) DeriveName(_, relDir string) string {
	return conventions.KebabCase(relDir)
}

func (kebab) URL(relDir string) string {
	return conventions.DirURL(relDir)
}

func (kebab) Reference(rel, _ string) (string, string) {
	return rel, ""
}

func (kebab) Manifest(res Resolution) []ImportStatement {
	return RouteManifest(res.Routes)
}

// camel: "app/admin/users/usersComponent.js" with urlBase "/app" → name
// "appAdminUsers", url "/admin/users", controller "appAdminUsersController as vm",
// component "app/admin/users/usersComponent.js". Files in the root are named
// after the file itself: "homeController.js" → "home".
type camel struct {
	urlBase string
}

func (camel) DeriveName(file, relDir string) string {
	if relDir == "" {
		return conventions.BaseName(file)
	}
	return conventions.CamelCase(relDir)
}

func (c camel) URL(relDir string) string {
	return conventions.StripURLBase(conventions.DirURL(relDir), c.urlBase)
}

func (camel) Reference(rel, name string) (string, string) {
	return name + "Controller as vm", rel
}

func (c camel) Manifest(res Resolution) []ImportStatement {
	return FileManifest(res.Files, c)
}

// relDirOf returns the slash separated directory of a root-relative path,
// with "" for the root itself.
func relDirOf(rel string) string {
	dir := path.Dir(rel)
	if dir == "." {
		return ""
	}
	return dir
}
