package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, v string, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: v}}, ok
	}
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolvedPrefersLdflags(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "v1.2.3"
	stubBuildInfo(t, "v9.9.9", true)
	assert.Equal(t, "v1.2.3", Resolved())
}

func TestResolvedFallsBackToModuleVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "unknown"

	stubBuildInfo(t, "v0.4.0", true)
	assert.Equal(t, "v0.4.0", Resolved())

	stubBuildInfo(t, "(devel)", true)
	assert.Equal(t, "unknown", Resolved())

	stubBuildInfo(t, "", false)
	assert.Equal(t, "unknown", Resolved())
}

func TestString(t *testing.T) {
	assert.Contains(t, String(), "svldoc ")
	assert.Contains(t, String(), "commit "+GitCommit)
}
