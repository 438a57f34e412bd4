package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"unclassified", stderrors.New("boom"), 1},
		{"validation", ValidationError("bad").Build(), 2},
		{"not found", NotFoundError("missing").Build(), 4},
		{"config", ConfigError("bad yaml").Build(), 7},
		{"git", GitError("no remote").Build(), 8},
		{"links", LinkError("broken").Build(), 11},
		{"render", NewError(CategoryRender, "marshal").Build(), 11},
		{"filesystem", NewError(CategoryFileSystem, "write").Build(), 11},
		{"internal", NewError(CategoryInternal, "bug").Build(), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	err := WrapError(stderrors.New("no such file"), CategoryConfig, "read site config").
		WithContext("path", "svldoc.yaml").
		Build()

	assert.Equal(t, "Error: read site config: no such file", quiet.FormatError(err))
	assert.Equal(t, "Error: [config:error] read site config: no such file\n  path: svldoc.yaml", verbose.FormatError(err))
	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(NewError(CategoryInternal, "bug").Build()))
	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out

	code := adapter.HandleError(ValidationError("title is required").Build())

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "title is required")
	assert.Contains(t, logs.String(), "category=validation")
	assert.Equal(t, 0, adapter.HandleError(nil))
}
