package highlight

import "sort"

// Names of the built-in themes.
const (
	QtCreator = "qtcreator"
	GitHub    = "github"
	Dracula   = "dracula"
)

var builtins = map[string]*Theme{
	QtCreator: qtCreatorTheme(),
	GitHub:    githubTheme(),
	Dracula:   draculaTheme(),
}

// Get returns a copy of the built-in theme called name.
func Get(name string) (*Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Names lists the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks name up among custom themes first, then among the built-ins.
func Resolve(name string, custom []Theme) (*Theme, bool) {
	for i := range custom {
		if custom[i].Name == name {
			return custom[i].Clone(), true
		}
	}
	return Get(name)
}

// qtCreatorTheme is the SavvyLite light theme, modelled on the Qt Creator editor colors.
// doctype carries the italic of the selector rule it used to share.
func qtCreatorTheme() *Theme {
	return &Theme{
		Name:  QtCreator,
		Plain: Plain{Color: "#982e64", BackgroundColor: "#f7f7f7"},
		Styles: []Rule{
			{Types: []string{"changed"}, Style: Style{Color: "rgb(162, 191, 252)", FontStyle: FontStyleItalic}},
			{Types: []string{"deleted"}, Style: Style{Color: "#f92672", FontStyle: FontStyleItalic}},
			{Types: []string{"inserted"}, Style: Style{Color: "rgb(173, 219, 103)", FontStyle: FontStyleItalic}},
			{Types: []string{"comment"}, Style: Style{Color: "#008000", FontStyle: FontStyleItalic}},
			{Types: []string{"string", "url"}, Style: Style{Color: "#008000"}},
			{Types: []string{"variable"}, Style: Style{Color: "#808000"}},
			{Types: []string{"number"}, Style: Style{Color: "#000080"}},
			{Types: []string{"builtin", "char", "constant", "function", "class-name"}, Style: Style{Color: "#00677c"}},
			{Types: []string{"punctuation"}, Style: Style{Color: "#666"}},
			{Types: []string{"selector"}, Style: Style{Color: "#a6e22e", FontStyle: FontStyleItalic}},
			{Types: []string{"tag", "keyword"}, Style: Style{Color: "#092e64"}},
			{Types: []string{"operator"}, Style: Style{Color: "#444"}},
			{Types: []string{"boolean"}, Style: Style{Color: "#808000"}},
			{Types: []string{"namespace"}, Style: Style{Color: "rgb(178, 204, 214)", Opacity: 0.7}},
			{Types: []string{"property"}, Style: Style{Color: "#092e64"}},
			{Types: []string{"attr-name"}, Style: Style{Color: "#a6e22e !important"}},
			{Types: []string{"doctype"}, Style: Style{Color: "#8292a2", FontStyle: FontStyleItalic}},
			{Types: []string{"rule"}, Style: Style{Color: "#e6db74"}},
		},
	}
}

// githubTheme follows prism-react-renderer's "github" theme with each token type
// kept in the rule whose style it finally renders with.
func githubTheme() *Theme {
	return &Theme{
		Name:  GitHub,
		Plain: Plain{Color: "#393A34", BackgroundColor: "#f6f8fa"},
		Styles: []Rule{
			{Types: []string{"comment", "prolog", "doctype", "cdata"}, Style: Style{Color: "#999988", FontStyle: FontStyleItalic}},
			{Types: []string{"namespace"}, Style: Style{Opacity: 0.7}},
			{Types: []string{"string", "attr-value"}, Style: Style{Color: "#e3116c"}},
			{Types: []string{"punctuation", "operator"}, Style: Style{Color: "#393A34"}},
			{Types: []string{"entity", "url", "symbol", "number", "boolean", "variable", "constant", "property", "regex", "inserted"}, Style: Style{Color: "#36acaa"}},
			{Types: []string{"atrule", "attr-name"}, Style: Style{Color: "#00a4db"}},
			{Types: []string{"function", "deleted"}, Style: Style{Color: "#d73a49"}},
			{Types: []string{"function-variable"}, Style: Style{Color: "#6f42c1"}},
			{Types: []string{"tag", "selector", "keyword"}, Style: Style{Color: "#00009f"}},
		},
	}
}

// draculaTheme follows prism-react-renderer's "dracula" theme; it is the site's dark theme.
func draculaTheme() *Theme {
	return &Theme{
		Name:  Dracula,
		Plain: Plain{Color: "#F8F8F2", BackgroundColor: "#282A36"},
		Styles: []Rule{
			{Types: []string{"prolog", "constant", "builtin"}, Style: Style{Color: "rgb(189, 147, 249)"}},
			{Types: []string{"inserted", "function"}, Style: Style{Color: "rgb(80, 250, 123)"}},
			{Types: []string{"deleted"}, Style: Style{Color: "rgb(255, 85, 85)"}},
			{Types: []string{"changed"}, Style: Style{Color: "rgb(255, 184, 108)"}},
			{Types: []string{"punctuation", "symbol"}, Style: Style{Color: "rgb(248, 248, 242)"}},
			{Types: []string{"string", "char", "tag", "selector"}, Style: Style{Color: "rgb(255, 121, 198)"}},
			{Types: []string{"keyword", "variable"}, Style: Style{Color: "rgb(189, 147, 249)", FontStyle: FontStyleItalic}},
			{Types: []string{"comment"}, Style: Style{Color: "rgb(98, 114, 164)"}},
			{Types: []string{"attr-name"}, Style: Style{Color: "rgb(241, 250, 140)"}},
		},
	}
}
