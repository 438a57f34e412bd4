package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Link
	}{
		{"inline", "See [setup](./setup.md).", []Link{{LinkKindInline, "./setup.md"}}},
		{"image", "![logo](/img/logo_svl.svg)", []Link{{LinkKindImage, "/img/logo_svl.svg"}}},
		{"autolink", "<https://gitlab.com/sviosdi>", []Link{{LinkKindAuto, "https://gitlab.com/sviosdi"}}},
		{"reference", "Read [the intro][i].\n\n[i]: intro.md\n", []Link{
			{LinkKindInline, "intro.md"},
			{LinkKindDefinition, "intro.md"},
		}},
		{"none", "plain paragraph", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinks([]byte(tt.src)))
		})
	}
}

func TestExtractLinksIgnoresCode(t *testing.T) {
	src := "Inline `[x](./inline.md)`\n\n```\n[x](./fenced.md)\n```\n\n[ok](./real.md)\n"
	links := ExtractLinks([]byte(src))
	require.Len(t, links, 1)
	assert.Equal(t, "./real.md", links[0].Destination)
}
