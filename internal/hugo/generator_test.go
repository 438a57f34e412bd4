package hugo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/emit"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/label"
)

func fixedNow() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }

func generate(t *testing.T, cfg *config.SiteConfig) (string, *emit.Report) {
	t.Helper()
	out := t.TempDir()
	g := NewGenerator(cfg, out)
	g.now = fixedNow
	report, err := g.Generate(context.Background())
	require.NoError(t, err)
	return out, report
}

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestGenerateDefaultSite(t *testing.T) {
	out, report := generate(t, config.Default())

	assert.Equal(t, []string{
		"assets/css/syntax-dark.css",
		"assets/css/syntax.css",
		ConfigFile,
		ShortcodeFile,
	}, report.Files)
	assert.Equal(t, emit.OutcomeSuccess, report.Outcome)
	for _, st := range stages {
		assert.Contains(t, report.StageDurations, string(st.name))
	}

	root := readYAML(t, filepath.Join(out, ConfigFile))
	assert.Equal(t, "SavvyLite", root["title"])
	assert.Equal(t, "https://sviosdi.github.io/svl-doc/", root["baseURL"])
	assert.Equal(t, "fr", root["defaultContentLanguage"])

	wantLanguages := map[string]any{
		"fr": map[string]any{"languageName": "français", "languageCode": "fr", "weight": 1},
	}
	if diff := cmp.Diff(wantLanguages, root["languages"]); diff != "" {
		t.Errorf("languages mismatch (-want +got):\n%s", diff)
	}

	wantMenu := map[string]any{"main": []any{
		map[string]any{"name": "Documentation", "weight": 10, "pageRef": "/docs/intro", "params": map[string]any{"position": "left"}},
		map[string]any{"name": "Blog", "weight": 11, "pageRef": "/blog", "params": map[string]any{"position": "left"}},
		map[string]any{"name": "GitLab", "weight": 102, "url": "https://gitlab.com/sviosdi/signals_slots", "params": map[string]any{"position": "right"}},
	}}
	if diff := cmp.Diff(wantMenu, root["menu"]); diff != "" {
		t.Errorf("menu mismatch (-want +got):\n%s", diff)
	}

	params := root["params"].(map[string]any)
	assert.Equal(t, "Documentation", params["description"])
	assert.Equal(t, []any{"src/css/custom.css"}, params["customCss"])
	footer := params["footer"].(map[string]any)
	assert.Equal(t, "dark", footer["style"])
	assert.Equal(t, "Copyright © 2026 SavvyLite.", footer["copyright"])
	navbar := params["navbar"].(map[string]any)
	assert.Equal(t, map[string]any{"src": "img/logo_svl.svg", "alt": "SavvyLiteLogo"}, navbar["logo"])

	markup := root["markup"].(map[string]any)["highlight"].(map[string]any)
	assert.Equal(t, false, markup["noClasses"])
}

func TestGenerateWritesAssets(t *testing.T) {
	out, _ := generate(t, config.Default())

	shortcode, err := os.ReadFile(filepath.Join(out, ShortcodeFile))
	require.NoError(t, err)
	assert.Equal(t, label.Shortcode(), string(shortcode))

	light, err := os.ReadFile(filepath.Join(out, "assets", "css", "syntax.css"))
	require.NoError(t, err)
	dark, err := os.ReadFile(filepath.Join(out, "assets", "css", "syntax-dark.css"))
	require.NoError(t, err)
	assert.Contains(t, string(light), ".chroma")
	assert.NotEqual(t, string(light), string(dark))

	_, err = os.Stat(filepath.Join(out, emit.ReportDir, emit.ReportFile))
	require.NoError(t, err)
}

func TestGenerateWarnsWithoutDarkTheme(t *testing.T) {
	cfg := config.Default()
	cfg.ThemeConfig.Prism.DarkTheme = ""
	_, report := generate(t, cfg)
	assert.Equal(t, emit.OutcomeWarning, report.Outcome)
	require.Len(t, report.Warnings, 1)
	assert.True(t, strings.Contains(report.Warnings[0], "qtcreator"))
}

func TestGenerateLanguagesOrder(t *testing.T) {
	cfg := config.Default()
	cfg.I18n.Locales = []string{"en", "fr", "de"}
	out, _ := generate(t, cfg)

	langs := readYAML(t, filepath.Join(out, ConfigFile))["languages"].(map[string]any)
	assert.Equal(t, 1, langs["fr"].(map[string]any)["weight"])
	assert.Equal(t, 2, langs["en"].(map[string]any)["weight"])
	assert.Equal(t, 3, langs["de"].(map[string]any)["weight"])
	assert.Equal(t, "Deutsch", langs["de"].(map[string]any)["languageName"])
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := t.TempDir()
	report, err := NewGenerator(config.Default(), out).Generate(ctx)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
	assert.Equal(t, emit.OutcomeFailed, report.Outcome)
	assert.Empty(t, report.Files)
}

func TestGenerateUnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.ThemeConfig.Prism.Theme = "missing"
	_, err := NewGenerator(cfg, t.TempDir()).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}
