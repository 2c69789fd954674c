package config

import (
	"testing"
	"time"

	"github.com/iwtcode/urAdapter/urscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_RobotOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UR_PRIMARY_PORT", "30012")
	t.Setenv("UR_FALLBACK_PORT", "30013")
	t.Setenv("UR_PROBE_TIMEOUT", "750ms")
	t.Setenv("UR_STOP_DELAY", "20")
	t.Setenv("LOGGER_ENABLE", "false")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 30012, cfg.Robot.PrimaryPort)
	assert.Equal(t, 30013, cfg.Robot.FallbackPort)
	assert.Equal(t, 750*time.Millisecond, cfg.Robot.ProbeTimeout)
	assert.Equal(t, 20*time.Millisecond, cfg.Robot.StopDelay)
	assert.False(t, cfg.Logging.Enable)
}

func TestRobotConfig_Endpoints(t *testing.T) {
	rc := RobotConfig{PrimaryPort: 30002, DashboardPort: 29999, FallbackPort: 30002}

	table := rc.Endpoints("10.0.0.2", 0)
	assert.Equal(t, "10.0.0.2:29999", table.Dashboard.Address())
	assert.False(t, table.HasDistinctFallback())

	table = rc.Endpoints("10.0.0.2", 31000)
	assert.Equal(t, []urscript.Endpoint{table.Primary, table.Fallback}, table.ControlCandidates())
	assert.Equal(t, 31000, table.Fallback.Port)
}

func TestRobotConfig_Endpoints_CustomPrimaryWithoutFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UR_PRIMARY_PORT", "30003")
	t.Setenv("UR_FALLBACK_PORT", "0")
	t.Setenv("LOGGER_ENABLE", "false")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	table := cfg.Robot.Endpoints("10.0.0.2", 0)
	assert.Equal(t, 30003, table.Primary.Port)
	assert.False(t, table.HasDistinctFallback())
	assert.Len(t, table.ControlCandidates(), 1)
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("UR_PROBE_TIMEOUT", "soon")
	assert.Equal(t, urscript.DefaultProbeTimeout, getEnvAsDuration("UR_PROBE_TIMEOUT", urscript.DefaultProbeTimeout))
}
