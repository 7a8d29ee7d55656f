package hostinfo

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePath(t *testing.T) {
	home, err := HomePath()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}

func TestPID(t *testing.T) {
	assert.Equal(t, os.Getpid(), PID())
}

func TestEnvVar(t *testing.T) {
	t.Setenv("SHINSEI_TEST_ENV", "value")

	got, ok := EnvVar("SHINSEI_TEST_ENV")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = EnvVar("SHINSEI_TEST_ENV_MISSING")
	assert.False(t, ok)
}

func TestGetOsInfo(t *testing.T) {
	info := GetOsInfo()
	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.NotEmpty(t, info.Hostname)
	assert.Equal(t, os.Getpid(), info.PID)
}
