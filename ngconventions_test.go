package ngconventions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafbgarcia/ngconventions/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "feature1", "feature1Controller.js"), "export default function () {}\n")
	writeFile(t, filepath.Join(dir, "feature1", "feature1.html"), "<h1>1</h1>\n")
	writeFile(t, filepath.Join(dir, "feature2", "feature2Controller.js"), "export default function () {}\n")
	return dir
}

func TestGenerateRoutes(t *testing.T) {
	routes, err := GenerateRoutes(config.Config{Root: testProject(t)})
	require.NoError(t, err)

	assert.Equal(t, []Route{{
		Name:       "feature-1",
		URL:        "/feature1",
		Controller: "feature1/feature1Controller.js",
		Template:   "feature1/feature1.html",
	}}, routes)
}

func TestResolveReportsWarnings(t *testing.T) {
	res, err := Resolve(config.Config{Root: testProject(t)})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "feature-2", res.Warnings[0].Route)
}

func TestGenerate(t *testing.T) {
	dir := testProject(t)

	result, err := Generate(config.Config{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.RouteCount())
	assert.FileExists(t, filepath.Join(dir, "importConfig.js"))
	assert.FileExists(t, filepath.Join(dir, "routerConfigUiRouter.js"))
}

func TestGenerateUnknownRouterType(t *testing.T) {
	_, err := Generate(config.Config{Root: testProject(t), RouterType: "vueRouter"})
	assert.ErrorIs(t, err, ErrUnknownRouterType)
}

func TestGenerateIndependentConfigs(t *testing.T) {
	a, b := testProject(t), t.TempDir()
	writeFile(t, filepath.Join(b, "only", "onlyComponent.js"), "export default function () {}\n")
	writeFile(t, filepath.Join(b, "only", "only.html"), "<p></p>\n")

	routesA, err := GenerateRoutes(config.Config{Root: a})
	require.NoError(t, err)
	routesB, err := GenerateRoutes(config.Config{Root: b, Convention: config.Camel})
	require.NoError(t, err)
	routesA2, err := GenerateRoutes(config.Config{Root: a})
	require.NoError(t, err)

	assert.Equal(t, routesA, routesA2, "a previous call must not leak into the next")
	require.Len(t, routesB, 1)
	assert.Equal(t, "only", routesB[0].Name)
}

func TestGenerateBasicExample(t *testing.T) {
	chdir(t, filepath.Join("examples", "basic"))
	cfg, err := config.NewLoader().Load("")
	require.NoError(t, err)

	out := t.TempDir()
	cfg.ImportConfig = filepath.Join(out, "importConfig.js")
	cfg.RouterConfig = filepath.Join(out, "routerConfigUiRouter.js")

	result, err := Generate(cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	var names []string
	for _, r := range result.Routes {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"home", "users-list", "users-detail"}, names)

	imports, err := os.ReadFile(result.ImportConfig)
	require.NoError(t, err)
	assert.Contains(t, string(imports), "import usersDetail from './users/detail/detailComponent.js';")
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
