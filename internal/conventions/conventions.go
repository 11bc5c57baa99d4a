// Package conventions defines the path and URL rules that map a project's
// directory structure to route records.
package conventions

import (
	"os"
	"path/filepath"
	"strings"
)

// RelativeToRoot returns path relative to root in slash form. A path equal to
// root maps to "". If the two cannot be related (e.g. one is absolute and the
// other is not), the cleaned path is returned unchanged.
//
// Examples:
//
//	("tests/fixtures", "tests/fixtures/feature1")          → "feature1"
//	("./tests/fixtures", "tests/fixtures/a/aController.js") → "a/aController.js"
//	("tests/fixtures", "tests/fixtures")                   → ""
func RelativeToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Clean(path)
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// WithTrailingSeparator appends the platform path separator to dir when dir
// is non-empty and does not already end with one.
func WithTrailingSeparator(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// GlobPattern joins a directory and a glob suffix. Glob metacharacters in
// dir are escaped so that "users/[id]" matches only itself.
func GlobPattern(dir, pattern string) string {
	return WithTrailingSeparator(EscapeMeta(dir)) + pattern
}

var metaEscaper = strings.NewReplacer(
	"*", `\*`,
	"?", `\?`,
	"[", `\[`,
	"]", `\]`,
	"{", `\{`,
	"}", `\}`,
)

// EscapeMeta escapes the glob metacharacters *?[]{} in a literal path. On
// Windows, where the backslash is a separator and cannot escape, the path is
// returned unchanged.
func EscapeMeta(path string) string {
	if os.PathSeparator == '\\' {
		return path
	}
	return metaEscaper.Replace(path)
}

// DirURL converts a root-relative, slash separated directory to a URL.
//
//	""               → "/"
//	"feature1"       → "/feature1"
//	"admin/settings" → "/admin/settings"
func DirURL(relDir string) string {
	return "/" + strings.TrimPrefix(relDir, "/")
}

// StripURLBase removes urlBase from the front of url and re-roots the
// remainder with a single leading "/". The comparison is a plain string
// prefix match, so "/fixtures" also strips "/fixtures2/x" to "/2/x".
func StripURLBase(url, urlBase string) string {
	if urlBase == "" || !strings.HasPrefix(url, urlBase) {
		return url
	}
	return "/" + strings.TrimLeft(url[len(urlBase):], "/")
}
