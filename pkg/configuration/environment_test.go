package configuration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv_NoFiles(t *testing.T) {
	n, err := LoadEnv([]string{filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestConfiguration_Defaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LOG_PATH", filepath.Join(tmp, "app.log"))
	t.Setenv("SESSION_PATH", filepath.Join(tmp, "session.json"))

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	t.Cleanup(c.Unload)

	require.Equal(t, "http://localhost:5000/api", c.API.BaseURL)
	require.Zero(t, c.API.Timeout)
	require.Equal(t, "10m0s", c.Attendance.PollInterval.String())
	require.Equal(t, "1s", c.Attendance.TickInterval.String())
	require.Equal(t, "localhost:3200", c.SocketAddress)
	require.NotNil(t, c.Logger())
}

func TestAttendanceOptions_Validate(t *testing.T) {
	opts := AttendanceOptions{PollInterval: 0, TickInterval: 1}
	require.Error(t, opts.Validate())
}
