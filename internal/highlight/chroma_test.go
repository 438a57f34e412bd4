package highlight

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaStyle(t *testing.T) {
	theme, _ := Get(QtCreator)
	style, err := theme.Chroma()
	require.NoError(t, err)

	assert.Equal(t, "svldoc-qtcreator", style.Name)

	bg := style.Get(chroma.Background)
	assert.Equal(t, "#982e64", bg.Colour.String())
	assert.Equal(t, "#f7f7f7", bg.Background.String())

	comment := style.Get(chroma.Comment)
	assert.Equal(t, "#008000", comment.Colour.String())
	assert.Equal(t, chroma.Yes, comment.Italic)

	attr := style.Get(chroma.NameAttribute)
	assert.Equal(t, "#a6e22e", attr.Colour.String())

	changed := style.Get(chroma.GenericSubheading)
	assert.Equal(t, "#a2bffc", changed.Colour.String())
}

func TestChromaStyle_FirstRuleWinsPerChromaType(t *testing.T) {
	theme := &Theme{
		Name:  "t",
		Plain: Plain{Color: "#000", BackgroundColor: "#fff"},
		Styles: []Rule{
			{Types: []string{"keyword"}, Style: Style{Color: "#111111"}},
			{Types: []string{"keyword"}, Style: Style{Color: "#222222"}},
			{Types: []string{"unknown-token"}, Style: Style{Color: "#333333"}},
		},
	}
	style, err := theme.Chroma()
	require.NoError(t, err)
	assert.Equal(t, "#111111", style.Get(chroma.Keyword).Colour.String())
}

func TestChromaStyle_BadColor(t *testing.T) {
	theme := &Theme{Name: "bad", Plain: Plain{Color: "red", BackgroundColor: "#fff"}}
	_, err := theme.Chroma()
	assert.Error(t, err)
}

func TestChromaTokenTypeMappingIsInjective(t *testing.T) {
	seen := map[chroma.TokenType]string{}
	for prism, ct := range prismToChroma {
		if other, ok := seen[ct]; ok {
			t.Fatalf("%s and %s both map to %s", prism, other, ct)
		}
		seen[ct] = prism
	}
	ct, ok := ChromaTokenType("keyword")
	require.True(t, ok)
	assert.Equal(t, chroma.Keyword, ct)
}

func TestWriteCSS(t *testing.T) {
	theme, _ := Get(Dracula)
	var buf bytes.Buffer
	require.NoError(t, WriteCSS(&buf, theme))

	css := buf.String()
	assert.Contains(t, css, ".chroma")
	assert.Contains(t, css, "#282a36")
}

func TestPreview(t *testing.T) {
	theme, _ := Get(QtCreator)
	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, theme, "cpp", "// hi\nint main() { return 0; }\n"))

	out := buf.String()
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "color:#008000")

	buf.Reset()
	require.NoError(t, Preview(&buf, theme, "no-such-language", "plain text"))
	assert.Contains(t, buf.String(), "plain text")
}

func TestPrismJSON(t *testing.T) {
	theme, _ := Get(QtCreator)
	data, err := theme.PrismJSON()
	require.NoError(t, err)

	var decoded struct {
		Plain  map[string]string `json:"plain"`
		Styles []struct {
			Types []string       `json:"types"`
			Style map[string]any `json:"style"`
		} `json:"styles"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "#982e64", decoded.Plain["color"])
	assert.Len(t, decoded.Styles, len(theme.Styles))
	assert.NotContains(t, string(data), `"name"`)
	assert.Equal(t, "#a6e22e !important", decoded.Styles[15].Style["color"])
}
