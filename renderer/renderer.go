// Package renderer renders the generated artifacts from text templates.
//
// Built-in templates are embedded; a directory of "<name>.tmpl" files can be
// supplied to replace them.
package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var builtin embed.FS

// Template names of the built-in artifacts.
const (
	ImportConfigES2015 = "importConfigES2015.js"
	RouterConfigUI     = "routerConfigUiRouter.js"
	RouterConfigNg     = "routerConfigNgRouter.js"
)

// Renderer parses and caches templates from a single file system.
type Renderer struct {
	fsys fs.FS
	root string

	mu    sync.Mutex
	cache map[string]*template.Template
}

// New returns a Renderer reading templates from dir, or the embedded
// templates when dir is empty.
func New(dir string) *Renderer {
	if dir == "" {
		return &Renderer{fsys: builtin, root: "templates", cache: map[string]*template.Template{}}
	}
	return &Renderer{fsys: os.DirFS(dir), root: ".", cache: map[string]*template.Template{}}
}

// Render executes the template called name with data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	path := name + ".tmpl"
	if r.root != "." {
		path = r.root + "/" + path
	}
	src, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(funcMap).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}

var funcMap = template.FuncMap{
	"json": toJSON,
}

// toJSON renders v as a JavaScript literal.
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
