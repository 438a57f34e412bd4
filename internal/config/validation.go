package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/sviosdi/svldoc/internal/foundation"
)

// Validate checks every structural invariant of the site configuration and
// reports all failures at once as a single validation error.
func Validate(cfg *SiteConfig) error {
	return newSiteValidator().Validate(cfg).ToError()
}

func newSiteValidator() *foundation.ValidatorChain[*SiteConfig] {
	return foundation.NewValidatorChain(
		validateMetadata,
		validatePolicies,
		validateI18n,
		validatePresets,
		validatePrism,
		validateColorMode,
		validateNavbar,
		validateFooter,
	)
}

func invalid(field, code, format string, args ...any) foundation.ValidationResult {
	return foundation.Invalid(foundation.NewValidationError(field, code, fmt.Sprintf(format, args...)))
}

func validateMetadata(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Required("title")(cfg.Title)

	u, err := url.Parse(cfg.URL)
	switch {
	case cfg.URL == "":
		result = result.Combine(invalid("url", "required", "field is required"))
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		result = result.Combine(invalid("url", "absolute_url", "must be an absolute http(s) URL, got %q", cfg.URL))
	case u.Path != "" && u.Path != "/":
		result = result.Combine(invalid("url", "url_path", "must not contain a path; put %q in baseUrl", u.Path))
	}

	if !strings.HasPrefix(cfg.BaseURL, "/") || !strings.HasSuffix(cfg.BaseURL, "/") {
		result = result.Combine(invalid("baseUrl", "slashes", "must start and end with '/', got %q", cfg.BaseURL))
	}
	return result
}

func validatePolicies(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Valid()
	policies := []struct {
		field  string
		policy BrokenLinkPolicy
	}{
		{"onBrokenLinks", cfg.OnBrokenLinks},
		{"onBrokenMarkdownLinks", cfg.OnBrokenMarkdownLinks},
	}
	for _, p := range policies {
		if _, ok := brokenLinkNormalizer.Lookup(string(p.policy)); !ok {
			result = result.Combine(invalid(p.field, "one_of", "must be one of throw, warn, ignore; got %q", p.policy))
		}
	}
	return result
}

func validateI18n(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Valid()
	i18n := cfg.I18n
	if len(i18n.Locales) == 0 {
		result = result.Combine(invalid("i18n.locales", "required", "at least one locale is required"))
	}
	seen := map[string]bool{}
	for i, loc := range i18n.Locales {
		field := fmt.Sprintf("i18n.locales[%d]", i)
		if _, err := language.Parse(loc); err != nil {
			result = result.Combine(invalid(field, "locale", "%q is not a valid BCP 47 language tag", loc))
		}
		if seen[loc] {
			result = result.Combine(invalid(field, "duplicate", "locale %q listed twice", loc))
		}
		seen[loc] = true
	}
	switch {
	case i18n.DefaultLocale == "":
		result = result.Combine(invalid("i18n.defaultLocale", "required", "field is required"))
	case !seen[i18n.DefaultLocale]:
		result = result.Combine(invalid("i18n.defaultLocale", "locale_missing",
			"default locale %q must appear in i18n.locales %v", i18n.DefaultLocale, i18n.Locales))
	}
	return result
}

func validatePresets(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Valid()
	seen := map[string]bool{}
	for i, p := range cfg.Presets {
		field := fmt.Sprintf("presets[%d]", i)
		switch {
		case p.Name == "":
			result = result.Combine(invalid(field+".name", "required", "field is required"))
		case p.Name != PresetClassic:
			result = result.Combine(invalid(field+".name", "unknown_preset", "unknown preset %q (known: %s)", p.Name, PresetClassic))
		case seen[p.Name]:
			result = result.Combine(invalid(field+".name", "duplicate", "preset %q listed twice", p.Name))
		}
		seen[p.Name] = true
		if p.Docs != nil && p.Blog != nil && routeOf(p.Docs.RouteBasePath) == routeOf(p.Blog.RouteBasePath) {
			result = result.Combine(invalid(field+".blog.routeBasePath", "route_conflict",
				"docs and blog share the route %q", routeOf(p.Docs.RouteBasePath)))
		}
	}
	return result
}

func validatePrism(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Valid()
	prism := cfg.ThemeConfig.Prism
	names := map[string]bool{}
	for i := range prism.CustomThemes {
		t := &prism.CustomThemes[i]
		field := fmt.Sprintf("themeConfig.prism.customThemes[%d]", i)
		result = result.Combine(t.ValidateAt(field))
		if t.Name != "" && names[t.Name] {
			result = result.Combine(invalid(field+".name", "duplicate", "theme %q defined twice", t.Name))
		}
		names[t.Name] = true
	}
	if _, err := cfg.LightTheme(); err != nil {
		result = result.Combine(invalid("themeConfig.prism.theme", "unknown_theme", "unknown syntax theme %q", prism.Theme))
	}
	if prism.DarkTheme != "" {
		if _, err := cfg.DarkTheme(); err != nil {
			result = result.Combine(invalid("themeConfig.prism.darkTheme", "unknown_theme", "unknown syntax theme %q", prism.DarkTheme))
		}
	}
	return result
}

func validateColorMode(cfg *SiteConfig) foundation.ValidationResult {
	return foundation.OneOf("themeConfig.colorMode.defaultMode", []ColorMode{ColorModeLight, ColorModeDark})(cfg.ThemeConfig.ColorMode.DefaultMode)
}

func validateNavbar(cfg *SiteConfig) foundation.ValidationResult {
	result := foundation.Valid()
	positions := foundation.OneOf("", []NavbarPosition{NavbarLeft, NavbarRight})
	for i, item := range cfg.ThemeConfig.Navbar.Items {
		field := fmt.Sprintf("themeConfig.navbar.items[%d]", i)
		result = result.Combine(foundation.Required(field + ".label")(item.Label))
		result = result.Combine(validateTarget(field, item.Target))
		if r := positions(item.Position); !r.Valid {
			result = result.Combine(invalid(field+".position", "one_of", "must be left or right, got %q", item.Position))
		}
		if item.Type == "doc" && item.DocID == "" {
			result = result.Combine(invalid(field+".docId", "required", "doc items need a docId"))
		}
	}
	if logo := cfg.ThemeConfig.Navbar.Logo; logo != nil && logo.Src == "" {
		result = result.Combine(invalid("themeConfig.navbar.logo.src", "required", "field is required"))
	}
	return result
}

func validateFooter(cfg *SiteConfig) foundation.ValidationResult {
	footer := cfg.ThemeConfig.Footer
	result := foundation.Valid()
	if r := foundation.OneOf("", []FooterStyle{FooterStyleDark, FooterStyleLight})(footer.Style); !r.Valid {
		result = result.Combine(invalid("themeConfig.footer.style", "one_of", "must be dark or light, got %q", footer.Style))
	}
	for g, group := range footer.Links {
		gf := fmt.Sprintf("themeConfig.footer.links[%d]", g)
		for i, link := range group.Items {
			field := fmt.Sprintf("%s.items[%d]", gf, i)
			result = result.Combine(foundation.Required(field + ".label")(link.Label))
			result = result.Combine(validateTarget(field, link.Target))
		}
	}
	return result
}

func validateTarget(field string, t Target) foundation.ValidationResult {
	switch t.count() {
	case 0:
		return invalid(field, "target", "one of docId, to or href is required")
	case 1:
	default:
		return invalid(field, "target", "only one of docId, to or href may be set")
	}
	switch t.Kind() {
	case TargetPath:
		if !strings.HasPrefix(t.To, "/") {
			return invalid(field+".to", "internal_path", "internal paths must start with '/', got %q", t.To)
		}
	case TargetExternal:
		u, err := url.Parse(t.Href)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid(field+".href", "absolute_url", "must be an absolute URL, got %q", t.Href)
		}
	}
	return foundation.Valid()
}
