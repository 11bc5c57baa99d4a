// Package jscheck verifies that generated artifacts are syntactically valid
// JavaScript (or TypeScript) using esbuild's Go API.
package jscheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// LoaderFor picks the esbuild loader from a file name's extension. Unknown
// extensions are treated as JavaScript.
func LoaderFor(name string) api.Loader {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	default:
		return api.LoaderJS
	}
}

// Check parses src as the module called name and returns every syntax error
// esbuild reports, one per line as "file:line:col: text".
func Check(name string, src []byte) error {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:     LoaderFor(name),
		Sourcefile: name,
		LogLevel:   api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var msgs []string
		for _, msg := range result.Errors {
			text := msg.Text
			if msg.Location != nil {
				text = fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
			}
			msgs = append(msgs, text)
		}
		return fmt.Errorf("esbuild errors:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}
