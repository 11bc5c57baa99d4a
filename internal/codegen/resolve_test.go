package codegen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafbgarcia/ngconventions/config"
	"github.com/rafbgarcia/ngconventions/internal/logging"
)

func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "fixtures")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func resolveFixtures(t *testing.T, cfg config.Config) (Resolution, string) {
	t.Helper()
	var logs bytes.Buffer
	r, err := NewResolver(cfg, WithLogger(logging.New(&logs, logging.Options{})))
	require.NoError(t, err)
	res, err := r.Resolve()
	require.NoError(t, err)
	return res, logs.String()
}

func findRoute(routes []Route, name string) *Route {
	for i := range routes {
		if routes[i].Name == name {
			return &routes[i]
		}
	}
	return nil
}

func TestResolveFixtures(t *testing.T) {
	res, _ := resolveFixtures(t, config.Config{Root: fixturesDir()})

	want := []Route{
		{
			Name:       "feature-1",
			URL:        "/feature1",
			Controller: "feature1/feature1Controller.js",
			Template:   "feature1/feature1.html",
		},
		{
			Name:       "feature-3",
			URL:        "/feature3",
			Controller: "feature3/feature3Controller.js",
			Template:   "feature3/feature3Template.html",
		},
	}
	assert.Equal(t, want, res.Routes)
	assert.Equal(t, []string{
		"feature1/feature1Controller.js",
		"feature2/feature2Controller.js",
		"feature3/feature3Controller.js",
	}, res.Files)
}

func TestResolveNameIsKebabCase(t *testing.T) {
	res, _ := resolveFixtures(t, config.Config{Root: fixturesDir()})
	require.NotEmpty(t, res.Routes)
	if res.Routes[0].Name != "feature-1" {
		t.Errorf("first route name = %q, want %q", res.Routes[0].Name, "feature-1")
	}
}

func TestResolveMissingTemplate(t *testing.T) {
	res, logs := resolveFixtures(t, config.Config{Root: fixturesDir()})

	assert.Nil(t, findRoute(res.Routes, "feature-2"))
	for _, r := range res.Routes {
		assert.NotEmpty(t, r.Template, "route %s has no template", r.Name)
	}

	missing := res.WarningsOf(MissingTemplate)
	require.Len(t, missing, 1)
	assert.Equal(t, "feature-2", missing[0].Route)
	assert.Equal(t, "feature2/feature2Controller.js", missing[0].File)
	assert.Contains(t, logs, "No templates found for:")
	assert.Contains(t, logs, "feature-2")
}

func TestResolveAmbiguousTemplate(t *testing.T) {
	res, logs := resolveFixtures(t, config.Config{Root: fixturesDir()})

	route := findRoute(res.Routes, "feature-3")
	require.NotNil(t, route)
	assert.Contains(t, route.Template, "feature3Template.html")

	ambiguous := res.WarningsOf(AmbiguousTemplate)
	require.Len(t, ambiguous, 1)
	assert.Equal(t, "feature-3", ambiguous[0].Route)
	assert.Equal(t, []string{
		"feature3/feature3Template.html",
		"feature3/otherTemplate.html",
	}, ambiguous[0].Templates)
	assert.Contains(t, logs, "Multiple templates found for:")
}

func TestResolveWarningText(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{
			Warning{Kind: MissingTemplate, Route: "feature-2"},
			`No templates found for: "feature-2".  The file will not be included in the routes.`,
		},
		{
			Warning{Kind: AmbiguousTemplate, Route: "feature-3"},
			`Multiple templates found for: "feature-3".  By convention only a single template should be found.  Using the first match and continuing execution.`,
		},
		{
			Warning{Kind: EmptyName, File: "appController.js"},
			`Empty route name for: "appController.js".  Move the file into a directory to give its route a name.`,
		},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("Warning.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolvePathsExcludeRoot(t *testing.T) {
	root := fixturesDir()
	res, _ := resolveFixtures(t, config.Config{Root: root})

	route := findRoute(res.Routes, "feature-1")
	require.NotNil(t, route)
	for _, v := range []string{route.URL, route.Template, route.Controller, route.Component} {
		assert.NotContains(t, v, root)
		assert.NotContains(t, v, "testdata")
	}
}

func TestResolveRelativeRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "web", "feature1", "feature1Controller.js"), "")
	writeFile(t, filepath.Join(dir, "web", "feature1", "feature1.html"), "")
	chdir(t, dir)

	res, _ := resolveFixtures(t, config.Config{Root: "./web"})
	require.Len(t, res.Routes, 1)
	assert.Equal(t, Route{
		Name:       "feature-1",
		URL:        "/feature1",
		Controller: "feature1/feature1Controller.js",
		Template:   "feature1/feature1.html",
	}, res.Routes[0])
}

func TestResolveCustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "admin", "userList", "userList.ctrl.js"), "")
	writeFile(t, filepath.Join(dir, "admin", "userList", "userList.tpl.html"), "")
	writeFile(t, filepath.Join(dir, "admin", "userList", "ignored.html"), "")
	writeFile(t, filepath.Join(dir, "admin", "userList", "userListController.js"), "")

	res, _ := resolveFixtures(t, config.Config{
		Root:      dir,
		Component: "**/*.ctrl.js",
		Template:  "*.tpl.html",
	})

	require.Len(t, res.Routes, 1)
	assert.Equal(t, "admin-user-list", res.Routes[0].Name)
	assert.Equal(t, "/admin/userList", res.Routes[0].URL)
	assert.Equal(t, "admin/userList/userList.tpl.html", res.Routes[0].Template)
	assert.Empty(t, res.Warnings)
}

func TestResolveCamelConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "homeController.js"), "")
	writeFile(t, filepath.Join(dir, "home.html"), "")
	writeFile(t, filepath.Join(dir, "app", "admin", "users", "usersComponent.js"), "")
	writeFile(t, filepath.Join(dir, "app", "admin", "users", "users.html"), "")
	writeFile(t, filepath.Join(dir, "app", "draft", "draftController.js"), "")

	res, _ := resolveFixtures(t, config.Config{
		Root:       dir,
		Convention: config.Camel,
		URLBase:    "/app",
	})

	require.Len(t, res.Routes, 2)

	home := findRoute(res.Routes, "home")
	require.NotNil(t, home, "root-level component should fall back to its file name")
	assert.Equal(t, Route{
		Name:       "home",
		URL:        "/",
		Controller: "homeController as vm",
		Component:  "homeController.js",
		Template:   "home.html",
	}, *home)

	users := findRoute(res.Routes, "appAdminUsers")
	require.NotNil(t, users)
	assert.Equal(t, Route{
		Name:       "appAdminUsers",
		URL:        "/admin/users",
		Controller: "appAdminUsersController as vm",
		Component:  "app/admin/users/usersComponent.js",
		Template:   "app/admin/users/users.html",
	}, *users)

	missing := res.WarningsOf(MissingTemplate)
	require.Len(t, missing, 1)
	assert.Equal(t, "appDraft", missing[0].Route)
	assert.Len(t, res.Files, 3)
}

func TestResolveDirsWithGlobCharacters(t *testing.T) {
	if os.PathSeparator == '\\' {
		t.Skip("glob escaping is unavailable with backslash separators")
	}
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "users", "[id]", "showController.js"), "")
	writeFile(t, filepath.Join(dir, "users", "[id]", "show.html"), "")
	writeFile(t, filepath.Join(dir, "users", "i", "other.html"), "")
	writeFile(t, filepath.Join(dir, "{legacy}", "legacyController.js"), "")
	writeFile(t, filepath.Join(dir, "{legacy}", "legacy.html"), "")

	res, _ := resolveFixtures(t, config.Config{Root: dir})

	assert.Empty(t, res.Warnings)
	require.Len(t, res.Routes, 2)
	for _, r := range res.Routes {
		switch r.Controller {
		case "users/[id]/showController.js":
			assert.Equal(t, "users/[id]/show.html", r.Template)
			assert.Equal(t, "/users/[id]", r.URL)
		case "{legacy}/legacyController.js":
			assert.Equal(t, "{legacy}/legacy.html", r.Template)
		default:
			t.Errorf("unexpected route %+v", r)
		}
	}
}

func TestResolveRootLevelKebabComponent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "appController.js"), "")
	writeFile(t, filepath.Join(dir, "app.html"), "")

	res, logs := resolveFixtures(t, config.Config{Root: dir})

	require.Len(t, res.Routes, 1)
	assert.Equal(t, "", res.Routes[0].Name)
	assert.Equal(t, "/", res.Routes[0].URL)

	empty := res.WarningsOf(EmptyName)
	require.Len(t, empty, 1)
	assert.Equal(t, "appController.js", empty[0].File)
	assert.Contains(t, logs, "Empty route name for:")
}

// fakeGlobber returns canned matches per pattern.
type fakeGlobber struct {
	matches map[string][]string
	err     error
}

func (f fakeGlobber) Glob(pattern string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[pattern], nil
}

func TestResolveKeepsEnumerationOrder(t *testing.T) {
	sep := string(filepath.Separator)
	glob := fakeGlobber{matches: map[string][]string{
		"proj" + sep + "**/*{Controller,Component}.js": {
			filepath.Join("proj", "zeta", "zetaController.js"),
			filepath.Join("proj", "alpha", "alphaController.js"),
		},
		filepath.Join("proj", "zeta") + sep + "*.html":  {filepath.Join("proj", "zeta", "zeta.html")},
		filepath.Join("proj", "alpha") + sep + "*.html": {filepath.Join("proj", "alpha", "alpha.html")},
	}}

	r, err := NewResolver(config.Config{Root: "proj"}, WithGlobber(glob), WithLogger(logging.Discard()))
	require.NoError(t, err)
	res, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, res.Routes, 2)
	assert.Equal(t, "zeta", res.Routes[0].Name)
	assert.Equal(t, "alpha", res.Routes[1].Name)
}

func TestResolveDuplicateNamesAreKept(t *testing.T) {
	sep := string(filepath.Separator)
	dir := filepath.Join("proj", "feature")
	glob := fakeGlobber{matches: map[string][]string{
		"proj" + sep + "**/*{Controller,Component}.js": {
			filepath.Join(dir, "featureController.js"),
			filepath.Join(dir, "featureComponent.js"),
		},
		dir + sep + "*.html": {filepath.Join(dir, "feature.html")},
	}}

	r, err := NewResolver(config.Config{Root: "proj"}, WithGlobber(glob), WithLogger(logging.Discard()))
	require.NoError(t, err)
	res, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, res.Routes, 2)
	assert.Equal(t, res.Routes[0].Name, res.Routes[1].Name)
	assert.Equal(t, "feature/featureController.js", res.Routes[0].Controller)
	assert.Equal(t, "feature/featureComponent.js", res.Routes[1].Controller)
}

func TestResolveGlobError(t *testing.T) {
	boom := errors.New("boom")
	r, err := NewResolver(config.Config{Root: "proj"}, WithGlobber(fakeGlobber{err: boom}), WithLogger(logging.Discard()))
	require.NoError(t, err)

	_, err = r.Resolve()
	assert.ErrorIs(t, err, boom)
}

func TestResolveEmptyRoot(t *testing.T) {
	res, _ := resolveFixtures(t, config.Config{Root: t.TempDir()})
	assert.NotNil(t, res.Routes)
	assert.Empty(t, res.Routes)
	assert.Empty(t, res.Warnings)
}

func TestNewResolverUnknownConvention(t *testing.T) {
	_, err := NewResolver(config.Config{Convention: "snake"})
	assert.ErrorIs(t, err, ErrUnknownConvention)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir on Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
