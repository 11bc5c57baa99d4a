package codegen

import (
	"strconv"
	"unicode"

	"github.com/rafbgarcia/ngconventions/internal/conventions"
)

// ImportStatement is one entry of the import manifest.
//
// Variable is the identifier the module is imported as and is unique within
// a manifest. Name is the identifier the controller is registered under; two
// components with the same route name share it, and the later registration
// replaces the earlier one.
type ImportStatement struct {
	Variable string `json:"variable"`
	Name     string `json:"name"`
	Path     string `json:"path"`
}

// RouteManifest builds one import per route, in route order. The path is the
// route's controller, or its component when there is no controller, made
// relative to the manifest ("./feature1/feature1Controller.js").
func RouteManifest(routes []Route) []ImportStatement {
	statements := make([]ImportStatement, 0, len(routes))
	used := map[string]bool{}
	for _, r := range routes {
		src := r.Controller
		if src == "" {
			src = r.Component
		}
		id := identifier(r.Name)
		statements = append(statements, ImportStatement{
			Variable: unique(used, id),
			Name:     id,
			Path:     "./" + src,
		})
	}
	return statements
}

// FileManifest builds one import per matched component file, whether or not
// its route survived template resolution. Paths are rooted with "/".
func FileManifest(files []string, conv Convention) []ImportStatement {
	statements := make([]ImportStatement, 0, len(files))
	used := map[string]bool{}
	for _, rel := range files {
		id := identifier(conv.DeriveName(rel, relDirOf(rel)))
		statements = append(statements, ImportStatement{
			Variable: unique(used, id),
			Name:     id,
			Path:     "/" + rel,
		})
	}
	return statements
}

// identifier turns a route name into a JavaScript identifier.
func identifier(name string) string {
	id := conventions.CamelCase(name)
	if id == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "_" + id
	}
	return id
}

// unique returns id, or id2, id3, ... when id is already used.
func unique(used map[string]bool, id string) string {
	candidate := id
	for n := 2; used[candidate]; n++ {
		candidate = id + strconv.Itoa(n)
	}
	used[candidate] = true
	return candidate
}
