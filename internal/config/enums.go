package config

import "github.com/sviosdi/svldoc/internal/foundation/normalization"

// BrokenLinkPolicy is the build-time reaction to an unresolvable link target.
type BrokenLinkPolicy string

const (
	BrokenLinkThrow  BrokenLinkPolicy = "throw"
	BrokenLinkWarn   BrokenLinkPolicy = "warn"
	BrokenLinkIgnore BrokenLinkPolicy = "ignore"
)

var brokenLinkNormalizer = normalization.NewEnumNormalizer("broken link policy", map[string]BrokenLinkPolicy{
	"throw":      BrokenLinkThrow,
	"fail":       BrokenLinkThrow,
	"fail-build": BrokenLinkThrow,
	"error":      BrokenLinkThrow,
	"warn":       BrokenLinkWarn,
	"warning":    BrokenLinkWarn,
	"log":        BrokenLinkWarn,
	"ignore":     BrokenLinkIgnore,
	"off":        BrokenLinkIgnore,
	"none":       BrokenLinkIgnore,
}, BrokenLinkThrow)

// ParseBrokenLinkPolicy accepts a policy name or alias.
func ParseBrokenLinkPolicy(raw string) (BrokenLinkPolicy, error) {
	return brokenLinkNormalizer.NormalizeWithValidation(raw)
}

// ColorMode is the light or dark color scheme.
type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
)

var colorModeNormalizer = normalization.NewEnumNormalizer("color mode", map[string]ColorMode{
	"light": ColorModeLight,
	"dark":  ColorModeDark,
}, ColorModeLight)

// FooterStyle is the footer color scheme.
type FooterStyle string

const (
	FooterStyleLight FooterStyle = "light"
	FooterStyleDark  FooterStyle = "dark"
)

var footerStyleNormalizer = normalization.NewEnumNormalizer("footer style", map[string]FooterStyle{
	"light": FooterStyleLight,
	"dark":  FooterStyleDark,
}, FooterStyleLight)

// NavbarPosition is the side of the navbar an item sits on.
type NavbarPosition string

const (
	NavbarLeft  NavbarPosition = "left"
	NavbarRight NavbarPosition = "right"
)

var navbarPositionNormalizer = normalization.NewEnumNormalizer("navbar position", map[string]NavbarPosition{
	"left":  NavbarLeft,
	"right": NavbarRight,
}, NavbarLeft)

// TargetKind classifies a Target.
type TargetKind string

const (
	TargetNone     TargetKind = ""
	TargetDoc      TargetKind = "doc"
	TargetPath     TargetKind = "path"
	TargetExternal TargetKind = "external"
)

// Kind reports which field of the target is set. Targets with several fields
// set are rejected by validation; Kind then prefers DocID, then To.
func (t Target) Kind() TargetKind {
	switch {
	case t.DocID != "":
		return TargetDoc
	case t.To != "":
		return TargetPath
	case t.Href != "":
		return TargetExternal
	default:
		return TargetNone
	}
}

func (t Target) count() int {
	n := 0
	for _, v := range []string{t.DocID, t.To, t.Href} {
		if v != "" {
			n++
		}
	}
	return n
}
