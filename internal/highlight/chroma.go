package highlight

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// prismToChroma maps prism token types onto chroma token types.
// Chroma resolves unset sub-types through its own hierarchy, so LiteralStringChar
// falls back to LiteralString when a theme has no "char" rule.
var prismToChroma = map[string]chroma.TokenType{
	"comment":           chroma.Comment,
	"prolog":            chroma.CommentSpecial,
	"doctype":           chroma.CommentPreproc,
	"cdata":             chroma.CommentMultiline,
	"string":            chroma.LiteralString,
	"char":              chroma.LiteralStringChar,
	"url":               chroma.LiteralStringOther,
	"regex":             chroma.LiteralStringRegex,
	"attr-value":        chroma.LiteralStringDouble,
	"symbol":            chroma.LiteralStringSymbol,
	"number":            chroma.LiteralNumber,
	"boolean":           chroma.KeywordConstant,
	"keyword":           chroma.Keyword,
	"rule":              chroma.KeywordReserved,
	"atrule":            chroma.KeywordNamespace,
	"operator":          chroma.Operator,
	"punctuation":       chroma.Punctuation,
	"builtin":           chroma.NameBuiltin,
	"constant":          chroma.NameConstant,
	"function":          chroma.NameFunction,
	"function-variable": chroma.NameFunctionMagic,
	"class-name":        chroma.NameClass,
	"variable":          chroma.NameVariable,
	"namespace":         chroma.NameNamespace,
	"property":          chroma.NameProperty,
	"attr-name":         chroma.NameAttribute,
	"tag":               chroma.NameTag,
	"selector":          chroma.NameDecorator,
	"entity":            chroma.NameEntity,
	"inserted":          chroma.GenericInserted,
	"deleted":           chroma.GenericDeleted,
	"changed":           chroma.GenericSubheading,
}

// ChromaTokenType reports the chroma token type a prism token type renders as.
func ChromaTokenType(prismType string) (chroma.TokenType, bool) {
	tt, ok := prismToChroma[prismType]
	return tt, ok
}

// Chroma builds a chroma style from the theme. Token types chroma has no
// counterpart for are skipped; for a chroma type reached twice the first rule wins.
func (t *Theme) Chroma() (*chroma.Style, error) {
	fg, _, err := ParseColor(t.Plain.Color)
	if err != nil {
		return nil, fmt.Errorf("theme %s: plain color: %w", t.Name, err)
	}
	bg, _, err := ParseColor(t.Plain.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("theme %s: plain background: %w", t.Name, err)
	}

	b := chroma.NewStyleBuilder("svldoc-" + t.Name)
	b.Add(chroma.Background, fg+" bg:"+bg)

	assigned := map[chroma.TokenType]bool{}
	for _, rule := range t.Styles {
		entry, err := chromaEntry(rule.Style)
		if err != nil {
			return nil, fmt.Errorf("theme %s: rule %v: %w", t.Name, rule.Types, err)
		}
		if entry == "" {
			continue
		}
		for _, pt := range rule.Types {
			ct, ok := prismToChroma[pt]
			if !ok || assigned[ct] {
				continue
			}
			assigned[ct] = true
			b.Add(ct, entry)
		}
	}
	return b.Build()
}

func chromaEntry(s Style) (string, error) {
	var parts []string
	if s.Bold() {
		parts = append(parts, "bold")
	}
	if s.Italic() {
		parts = append(parts, "italic")
	}
	if strings.Contains(s.TextDecorationLine, "underline") {
		parts = append(parts, "underline")
	}
	if s.Color != "" {
		c, _, err := ParseColor(s.Color)
		if err != nil {
			return "", err
		}
		parts = append(parts, c)
	}
	if s.BackgroundColor != "" {
		c, _, err := ParseColor(s.BackgroundColor)
		if err != nil {
			return "", err
		}
		parts = append(parts, "bg:"+c)
	}
	return strings.Join(parts, " "), nil
}

// WriteCSS writes class-based stylesheet rules for the theme, as consumed by
// Hugo with markup.highlight.noClasses disabled.
func WriteCSS(w io.Writer, t *Theme) error {
	style, err := t.Chroma()
	if err != nil {
		return err
	}
	return html.New(html.WithClasses(true)).WriteCSS(w, style)
}

// Preview highlights code in language lang with inline styles from the theme.
func Preview(w io.Writer, t *Theme, lang, code string) error {
	style, err := t.Chroma()
	if err != nil {
		return err
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", lang, err)
	}
	return html.New(html.WithClasses(false), html.TabWidth(4)).Format(w, style, iterator)
}

// PrismJSON encodes the theme as a prism-react-renderer theme object.
func (t *Theme) PrismJSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
