package ur

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwtcode/urAdapter/urscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"UR_HOST", "UR_PRIMARY_PORT", "UR_DASHBOARD_PORT", "UR_FALLBACK_PORT", "UR_TIMEOUT", "UR_SCRIPT_PATH", "UR_SIM_COMMAND_FILE", "UR_SIM_EXECUTABLE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "192.168.1.10", cfg.Host)
	assert.Equal(t, urscript.PrimaryPort, cfg.PrimaryPort)
	assert.Equal(t, urscript.DashboardPort, cfg.DashboardPort)
	assert.Equal(t, urscript.PrimaryPort, cfg.FallbackPort)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, urscript.DefaultScriptPath, cfg.ScriptPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Endpoints().HasDistinctFallback())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("UR_HOST", "10.1.1.7")
	t.Setenv("UR_PRIMARY_PORT", "30002")
	t.Setenv("UR_FALLBACK_PORT", "30003")
	t.Setenv("UR_TIMEOUT", "abc")
	t.Setenv("UR_DASHBOARD_PORT", "70000")

	cfg := Load()
	assert.Equal(t, "10.1.1.7", cfg.Host)
	assert.Equal(t, 30003, cfg.FallbackPort)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, urscript.DashboardPort, cfg.DashboardPort)

	table := cfg.Endpoints()
	assert.Equal(t, "10.1.1.7:30003", table.Fallback.Address())
	assert.True(t, table.HasDistinctFallback())
}

func TestLoad_CustomPrimaryWithoutFallback(t *testing.T) {
	t.Setenv("UR_PRIMARY_PORT", "30003")
	t.Setenv("UR_FALLBACK_PORT", "0")

	table := Load().Endpoints()
	assert.Equal(t, 30003, table.Primary.Port)
	assert.Len(t, table.ControlCandidates(), 1)

	table = (&Config{Host: "h", PrimaryPort: 30003}).Endpoints()
	assert.Equal(t, "h:30003", table.Fallback.Address())
	assert.Equal(t, urscript.DashboardPort, table.Dashboard.Port)
	assert.Len(t, table.ControlCandidates(), 1)
}

func testConfig(t *testing.T, primaryPort int) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Host:          "127.0.0.1",
		PrimaryPort:   primaryPort,
		DashboardPort: freePort(t),
		FallbackPort:  primaryPort,
		TimeoutMs:     500,
		ScriptPath:    filepath.Join(dir, urscript.DefaultScriptPath),
		CommandFile:   filepath.Join(dir, "webots_commands.txt"),
		LogLevel:      "off",
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}

func TestClient_SendScriptMissingFile(t *testing.T) {
	c, err := New(testConfig(t, freePort(t)))
	require.NoError(t, err)
	defer c.Close()

	report, err := c.SendScript("")
	require.Error(t, err)
	assert.ErrorIs(t, err, urscript.ErrFileNotFound)
	assert.False(t, report.Success)
	assert.Equal(t, "file_not_found", report.Status)
	assert.False(t, c.Status().Connected)
}

func TestClient_ConnectAndSend(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	cfg := testConfig(t, ln.Addr().(*net.TCPAddr).Port)
	c, err := New(cfg)
	require.NoError(t, err)

	status, err := c.Connect()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "connected", status.State)
	require.NotNil(t, status.Endpoint)
	assert.Equal(t, urscript.EndpointPrimary, status.Endpoint.Name)

	conn := <-accepted
	defer conn.Close()

	require.NoError(t, os.WriteFile(cfg.ScriptPath, []byte("def program():\nend\nprogram()\n"), 0o644))
	report, err := c.SendScript("")
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, "ok", report.Status)

	c.Close()
	assert.False(t, c.Status().Connected)
}

func TestClient_ExtractAndSimulate(t *testing.T) {
	cfg := testConfig(t, freePort(t))
	c, err := New(cfg)
	require.NoError(t, err)
	defer c.Close()

	target, err := c.ExtractJoints("movej([0.1, 0.2, 0.3, 0.4, 0.5, 0.6], a=0.4, v=1.05)")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, target.Joints)

	_, err = c.ExtractJoints("textmsg(\"nothing\")")
	assert.ErrorIs(t, err, urscript.ErrMalformedScript)
	assert.ErrorIs(t, err, ErrNoMotion)

	target, err = c.Simulate("movej([1, 0, 0, 0, 0, 0])")
	require.NoError(t, err)
	assert.Equal(t, cfg.CommandFile, target.CommandFile)

	data, err := os.ReadFile(cfg.CommandFile)
	require.NoError(t, err)
	assert.Equal(t, "1,0,0,0,0,0", string(data))
}
