package codegen

import (
	"fmt"
	"path/filepath"

	"github.com/rafbgarcia/ngconventions/internal/conventions"
	"github.com/rafbgarcia/ngconventions/internal/scan"
)

// matchTemplate finds the template next to a component file and returns its
// root-relative path, or "" when there is none. With several matches the
// first one wins and an AmbiguousTemplate warning is returned.
func (r *Resolver) matchTemplate(glob scan.Globber, file, name string) (string, *Warning, error) {
	pattern := conventions.GlobPattern(filepath.Dir(file), r.cfg.Template)
	matches, err := glob.Glob(pattern)
	if err != nil {
		return "", nil, fmt.Errorf("finding templates for %s: %w", name, err)
	}

	switch len(matches) {
	case 0:
		return "", nil, nil
	case 1:
		return conventions.RelativeToRoot(r.cfg.Root, matches[0]), nil, nil
	}

	candidates := make([]string, len(matches))
	for i, m := range matches {
		candidates[i] = conventions.RelativeToRoot(r.cfg.Root, m)
	}
	w := &Warning{
		Kind:      AmbiguousTemplate,
		Route:     name,
		File:      conventions.RelativeToRoot(r.cfg.Root, file),
		Templates: candidates,
	}
	r.log.Warn(w.String(), "using", candidates[0], "candidates", len(candidates))
	return candidates[0], w, nil
}
