package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantFM    string
		wantBody  string
		wantFound bool
	}{
		{"no frontmatter", "# Title\n", "", "# Title\n", false},
		{"yaml block", "---\nid: intro\n---\n# Title\n", "id: intro\n", "# Title\n", true},
		{"empty block", "---\n---\nbody\n", "", "body\n", true},
		{"crlf", "---\r\nid: intro\r\n---\r\nbody\r\n", "id: intro\r\n", "body\r\n", true},
		{"thematic break later", "text\n---\nmore\n", "", "text\n---\nmore\n", false},
		{"closed at end of file", "---\nid: intro\ntitle: Intro\n---", "id: intro\ntitle: Intro\n", "", true},
		{"crlf closed at end of file", "---\r\nid: intro\r\n---", "id: intro\r\n", "", true},
		{"empty block at end of file", "---\n---", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, found, err := Split([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantFM, string(fm))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSplitUnterminated(t *testing.T) {
	_, _, found, err := Split([]byte("---\nid: intro\n# Title\n"))
	require.ErrorIs(t, err, ErrUnterminated)
	assert.False(t, found)
}

func TestParse(t *testing.T) {
	page, err := Parse([]byte("---\nid: getting-started\ntitle: Getting started\nsidebar_position: 2\ntags: [intro, setup]\ncustom: 7\n---\nHello\n"))
	require.NoError(t, err)

	assert.Equal(t, "getting-started", page.Meta.ID)
	assert.Equal(t, "Getting started", page.Meta.Title)
	assert.InDelta(t, 2.0, page.Meta.SidebarPosition, 0)
	assert.Equal(t, []string{"intro", "setup"}, page.Meta.Tags)
	assert.Equal(t, 7, page.Fields["custom"])
	assert.Equal(t, "Hello\n", string(page.Body))
}

func TestParseClosedAtEndOfFile(t *testing.T) {
	page, err := Parse([]byte("---\nid: intro\ntitle: Intro\n---"))
	require.NoError(t, err)
	assert.Equal(t, "intro", page.Meta.ID)
	assert.Equal(t, "Intro", page.Meta.Title)
	assert.Empty(t, page.Body)
}

func TestParseWithoutFrontmatter(t *testing.T) {
	page, err := Parse([]byte("Just text\n"))
	require.NoError(t, err)
	assert.Empty(t, page.Meta.ID)
	assert.Empty(t, page.Fields)
	assert.Equal(t, "Just text\n", string(page.Body))
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\nid: [unclosed\n---\n"))
	require.Error(t, err)
}
