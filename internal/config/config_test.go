package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/highlight"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "https://sviosdi.github.io/svl-doc/", cfg.SiteURL())
	assert.Equal(t, "fr", cfg.DefaultLocale())
	assert.Equal(t, BrokenLinkThrow, cfg.OnBrokenLinks)
	assert.Equal(t, BrokenLinkWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, "/docs", cfg.DocsRoute())
	assert.Equal(t, "/blog", cfg.BlogRoute())
	assert.Equal(t, "/docs/intro", cfg.DocRoute("intro"))
	assert.Equal(t, "./src/css/custom.css", cfg.CustomCSS())
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Title = "changed"
	a.ThemeConfig.Navbar.Items[0].Label = "changed"

	b := Default()
	assert.Equal(t, "SavvyLite", b.Title)
	assert.Equal(t, "Documentation", b.ThemeConfig.Navbar.Items[0].Label)
}

func TestCopyrightYear(t *testing.T) {
	cfg := Default()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Copyright © 2026 SavvyLite.", cfg.Copyright(now))
}

func TestThemes(t *testing.T) {
	cfg := Default()
	light, err := cfg.LightTheme()
	require.NoError(t, err)
	assert.Equal(t, highlight.QtCreator, light.Name)

	dark, err := cfg.DarkTheme()
	require.NoError(t, err)
	assert.Equal(t, highlight.Dracula, dark.Name)

	cfg.ThemeConfig.Prism.DarkTheme = ""
	dark, err = cfg.DarkTheme()
	require.NoError(t, err)
	assert.Equal(t, highlight.QtCreator, dark.Name, "dark theme falls back to the light theme")

	cfg.ThemeConfig.Prism.Theme = "solarized"
	_, err = cfg.LightTheme()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestParseBrokenLinkPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want BrokenLinkPolicy
	}{
		{"throw", BrokenLinkThrow},
		{"FAIL-BUILD", BrokenLinkThrow},
		{" warning ", BrokenLinkWarn},
		{"off", BrokenLinkIgnore},
		{"", BrokenLinkThrow},
	}
	for _, tt := range tests {
		got, err := ParseBrokenLinkPolicy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBrokenLinkPolicy("explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid broken link policy "explode"`)
}

func TestTargetKind(t *testing.T) {
	assert.Equal(t, TargetDoc, Target{DocID: "intro"}.Kind())
	assert.Equal(t, TargetPath, Target{To: "/blog"}.Kind())
	assert.Equal(t, TargetExternal, Target{Href: "https://example.com"}.Kind())
	assert.Equal(t, TargetNone, Target{}.Kind())
}

func TestParseMinimalAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
title: Minimal
url: https://example.org
baseUrl: /
`))
	require.NoError(t, err)

	assert.Equal(t, BrokenLinkThrow, cfg.OnBrokenLinks)
	assert.Equal(t, BrokenLinkWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, DefaultLocale, cfg.DefaultLocale())
	assert.Equal(t, []string{DefaultLocale}, cfg.I18n.Locales)
	assert.Equal(t, highlight.GitHub, cfg.ThemeConfig.Prism.Theme)
	assert.Equal(t, ColorModeLight, cfg.ThemeConfig.ColorMode.DefaultMode)
	assert.Equal(t, FooterStyleLight, cfg.ThemeConfig.Footer.Style)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "/docs", cfg.DocsRoute())
	assert.Equal(t, "/blog", cfg.BlogRoute())
}

func TestParseNormalizesAliases(t *testing.T) {
	cfg, err := Parse([]byte(`
title: Aliases
url: https://example.org
baseUrl: /
onBrokenLinks: Fail
onBrokenMarkdownLinks: "off"
themeConfig:
  colorMode:
    defaultMode: DARK
  footer:
    style: Dark
  navbar:
    items:
      - label: Home
        to: /
        position: RIGHT
`))
	require.NoError(t, err)
	assert.Equal(t, BrokenLinkThrow, cfg.OnBrokenLinks)
	assert.Equal(t, BrokenLinkIgnore, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, ColorModeDark, cfg.ThemeConfig.ColorMode.DefaultMode)
	assert.Equal(t, FooterStyleDark, cfg.ThemeConfig.Footer.Style)
	assert.Equal(t, NavbarRight, cfg.ThemeConfig.Navbar.Items[0].Position)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("title: x\nurl: https://example.org\nbaseUrl: /\nnavBar: {}\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParseCustomTheme(t *testing.T) {
	cfg, err := Parse([]byte(`
title: Custom
url: https://example.org
baseUrl: /
themeConfig:
  prism:
    theme: mine
    customThemes:
      - name: mine
        plain:
          color: "#111"
          backgroundColor: "#fafafa"
        styles:
          - types: [comment]
            style:
              color: "#999"
              fontStyle: italic
`))
	require.NoError(t, err)
	theme, err := cfg.LightTheme()
	require.NoError(t, err)
	style, ok := theme.StyleFor("comment")
	require.True(t, ok)
	assert.True(t, style.Italic())
}

func TestLoadExpandsEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SVLDOC_TEST_TITLE=\"From Env\"\n"), 0o600))
	path := filepath.Join(dir, "svldoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: ${SVLDOC_TEST_TITLE}\nurl: https://example.org\nbaseUrl: /\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SVLDOC_TEST_TITLE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Title)
}

func TestLoadDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SVLDOC_TEST_ORG", "from-process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SVLDOC_TEST_ORG=from-file\n"), 0o600))
	path := filepath.Join(dir, "svldoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: t\nurl: https://example.org\nbaseUrl: /\norganizationName: ${SVLDOC_TEST_ORG}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.OrganizationName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	cfg, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "SavvyLite", cfg.Title)
}

func TestLoadInvalidAddsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svldoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: https://example.org\nbaseUrl: /\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryValidation, ce.Category())
	assert.Equal(t, path, ce.Context()["path"])
}

func TestInitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "svldoc.yaml")
	require.NoError(t, Init(path, false, nil))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), loaded); diff != "" {
		t.Fatalf("init output does not load back to the default (-want +got):\n%s", diff)
	}

	err = Init(path, false, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	require.NoError(t, Init(path, true, &Project{Organization: "acme", Name: "handbook"}))
	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme", loaded.OrganizationName)
	assert.Equal(t, "handbook", loaded.ProjectName)
	assert.Equal(t, "https://acme.github.io/handbook/", loaded.SiteURL())
}

func TestInitDerivesPagesURLFromHost(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    string
	}{
		{"github", Project{Host: "github.com", Organization: "acme", Name: "handbook"}, "https://acme.github.io/handbook/"},
		{"gitlab", Project{Host: "gitlab.com", Organization: "sviosdi", Name: "svl-doc"}, "https://sviosdi.gitlab.io/svl-doc/"},
		{"gitlab subgroup", Project{Host: "gitlab.com", Organization: "acme/docs", Name: "guide"}, "https://acme.gitlab.io/guide/"},
		{"no host", Project{Organization: "acme", Name: "handbook"}, "https://acme.github.io/handbook/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "svldoc.yaml")
			require.NoError(t, Init(path, false, &tt.project))
			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loaded.SiteURL())
		})
	}
}
