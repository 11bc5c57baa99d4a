// Package codegen derives a route table from a project's directory
// conventions and writes the import manifest and router configuration
// generated from it.
//
// Each file matched by the component glob becomes a candidate route named
// after its directory. The candidate keeps the single template that sits next
// to it; candidates without a template are dropped with a warning, and
// candidates with several templates use the first one.
package codegen

import "fmt"

// Route is one entry of the generated route table. It is serialized as-is
// into the router configuration.
type Route struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Controller string `json:"controller,omitempty"`
	Component  string `json:"component,omitempty"`
	Template   string `json:"template,omitempty"`
}

// WarningKind classifies a recoverable problem found while resolving routes.
type WarningKind string

const (
	// MissingTemplate means a component has no template; its route is dropped.
	MissingTemplate WarningKind = "missingTemplate"

	// AmbiguousTemplate means a component has several templates; the first
	// one in enumeration order is used.
	AmbiguousTemplate WarningKind = "ambiguousTemplate"

	// EmptyName means the convention derived no name for a component, which
	// happens for files directly in the root under kebab. The route is kept.
	EmptyName WarningKind = "emptyName"
)

// Warning records a recoverable problem for one route.
type Warning struct {
	Kind      WarningKind
	Route     string   // derived route name
	File      string   // root-relative component path
	Templates []string // root-relative candidates, AmbiguousTemplate only
}

func (w Warning) String() string {
	switch w.Kind {
	case MissingTemplate:
		return fmt.Sprintf("No templates found for: %q.  The file will not be included in the routes.", w.Route)
	case AmbiguousTemplate:
		return fmt.Sprintf("Multiple templates found for: %q.  By convention only a single template should be found.  Using the first match and continuing execution.", w.Route)
	case EmptyName:
		return fmt.Sprintf("Empty route name for: %q.  Move the file into a directory to give its route a name.", w.File)
	default:
		return fmt.Sprintf("%s: %q", w.Kind, w.Route)
	}
}

// Resolution is the outcome of one resolve pass.
type Resolution struct {
	Routes   []Route   // routes with a template, in enumeration order
	Files    []string  // every matched component, root-relative, in enumeration order
	Warnings []Warning // in the order they were raised
}

// WarningsOf returns the warnings of the given kind.
func (r Resolution) WarningsOf(kind WarningKind) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
