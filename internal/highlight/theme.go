package highlight

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/sviosdi/svldoc/internal/foundation"
)

// FontStyle values accepted in Style.FontStyle.
const (
	FontStyleNormal = "normal"
	FontStyleItalic = "italic"
)

// Theme is a syntax color theme: base colors plus ordered token rules.
type Theme struct {
	Name   string `yaml:"name" json:"-"`
	Plain  Plain  `yaml:"plain" json:"plain"`
	Styles []Rule `yaml:"styles" json:"styles"`
}

// Plain holds the base text and background colors of a code block.
type Plain struct {
	Color           string `yaml:"color" json:"color"`
	BackgroundColor string `yaml:"backgroundColor" json:"backgroundColor"`
}

// Rule maps a set of lexical token types to one style.
type Rule struct {
	Types []string `yaml:"types" json:"types"`
	Style Style    `yaml:"style" json:"style"`
}

// Style is the display style of a token type.
type Style struct {
	Color              string  `yaml:"color,omitempty" json:"color,omitempty"`
	BackgroundColor    string  `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	FontStyle          string  `yaml:"fontStyle,omitempty" json:"fontStyle,omitempty"`
	FontWeight         string  `yaml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	TextDecorationLine string  `yaml:"textDecorationLine,omitempty" json:"textDecorationLine,omitempty"`
	Opacity            float64 `yaml:"opacity,omitempty" json:"opacity,omitempty"`
}

// Italic reports whether the style asks for emphasis.
func (s Style) Italic() bool { return s.FontStyle == FontStyleItalic }

// Bold reports whether the style asks for a bold weight.
func (s Style) Bold() bool {
	if s.FontWeight == "bold" || s.FontWeight == "bolder" {
		return true
	}
	w, err := strconv.Atoi(s.FontWeight)
	return err == nil && w >= 600
}

// StyleFor returns the style of the first rule that lists tokenType.
func (t *Theme) StyleFor(tokenType string) (Style, bool) {
	for _, rule := range t.Styles {
		if slices.Contains(rule.Types, tokenType) {
			return rule.Style, true
		}
	}
	return Style{}, false
}

// TokenTypes returns every token type mentioned by the theme, sorted and unique.
func (t *Theme) TokenTypes() []string {
	seen := map[string]struct{}{}
	for _, rule := range t.Styles {
		for _, tt := range rule.Types {
			seen[tt] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tt := range seen {
		out = append(out, tt)
	}
	sort.Strings(out)
	return out
}

// Duplicates returns token types listed by more than one rule (or twice in the same rule), sorted.
func (t *Theme) Duplicates() []string {
	counts := map[string]int{}
	for _, rule := range t.Styles {
		for _, tt := range rule.Types {
			counts[tt]++
		}
	}
	var dups []string
	for tt, n := range counts {
		if n > 1 {
			dups = append(dups, tt)
		}
	}
	sort.Strings(dups)
	return dups
}

// Validate checks the theme's structural invariants.
func (t *Theme) Validate() error {
	return t.validate("theme").ToError()
}

func (t *Theme) validate(field string) foundation.ValidationResult {
	result := foundation.Valid()
	if t.Name == "" {
		result = result.Combine(foundation.Invalid(foundation.NewValidationError(field+".name", "required", "theme name is required")))
	}
	if _, _, err := ParseColor(t.Plain.Color); err != nil {
		result = result.Combine(colorError(field+".plain.color", err))
	}
	if _, _, err := ParseColor(t.Plain.BackgroundColor); err != nil {
		result = result.Combine(colorError(field+".plain.backgroundColor", err))
	}
	for i, rule := range t.Styles {
		rf := fmt.Sprintf("%s.styles[%d]", field, i)
		if len(rule.Types) == 0 {
			result = result.Combine(foundation.Invalid(foundation.NewValidationError(rf+".types", "required", "rule must list at least one token type")))
		}
		if rule.Style.Color != "" {
			if _, _, err := ParseColor(rule.Style.Color); err != nil {
				result = result.Combine(colorError(rf+".style.color", err))
			}
		}
		if rule.Style.BackgroundColor != "" {
			if _, _, err := ParseColor(rule.Style.BackgroundColor); err != nil {
				result = result.Combine(colorError(rf+".style.backgroundColor", err))
			}
		}
		switch rule.Style.FontStyle {
		case "", FontStyleNormal, FontStyleItalic:
		default:
			result = result.Combine(foundation.Invalid(foundation.NewValidationError(rf+".style.fontStyle", "one_of", "fontStyle must be normal or italic")))
		}
		if o := rule.Style.Opacity; o < 0 || o > 1 {
			result = result.Combine(foundation.Invalid(foundation.NewValidationError(rf+".style.opacity", "range", "opacity must be within [0, 1]")))
		}
	}
	if dups := t.Duplicates(); len(dups) > 0 {
		fe := foundation.NewValidationError(field+".styles", "duplicate_token_type",
			fmt.Sprintf("token types listed by more than one rule: %v", dups))
		fe.Value = dups
		result = result.Combine(foundation.Invalid(fe))
	}
	return result
}

// ValidateAt validates the theme, reporting field paths under prefix.
func (t *Theme) ValidateAt(prefix string) foundation.ValidationResult {
	return t.validate(prefix)
}

// Clone returns a deep copy of the theme.
func (t *Theme) Clone() *Theme {
	out := &Theme{Name: t.Name, Plain: t.Plain, Styles: make([]Rule, len(t.Styles))}
	for i, rule := range t.Styles {
		out.Styles[i] = Rule{Types: slices.Clone(rule.Types), Style: rule.Style}
	}
	return out
}

func colorError(field string, err error) foundation.ValidationResult {
	return foundation.Invalid(foundation.NewValidationError(field, "color", err.Error()))
}
