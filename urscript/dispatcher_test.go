package urscript

import (
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProgram = `def program():
    movej([0.5, 0, 0, 0, 0, 0], a=0.4, v=1.05)
end
program()`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "GeneratedURScript.urscript")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSendScript_MissingFileDoesNoNetworkIO(t *testing.T) {
	dialer := &recordingDialer{}
	m := NewConnectionManager(testTable(closedPort(t), closedPort(t), closedPort(t)), testOptions(dialer.Dial))
	d := NewDispatcher(m)

	res := d.SendScript(filepath.Join(t.TempDir(), "missing.script"))

	assert.Equal(t, StatusFileNotFound, res.Status)
	assert.ErrorIs(t, res.AsError(), ErrFileNotFound)
	assert.ErrorIs(t, res.AsError(), os.ErrNotExist)
	assert.Empty(t, dialer.dialed())
	assert.Equal(t, Disconnected, m.State())
}

func TestSendScript_ConnectsOnDemand(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	t.Cleanup(m.Disconnect)
	d := NewDispatcher(m)

	res := d.SendScript(writeScript(t, testProgram))

	require.True(t, res.OK(), res.String())
	assert.Equal(t, EndpointPrimary, res.Endpoint.Name)
	assert.True(t, m.Connected())
	assert.Eventually(t, func() bool {
		return primary.payload() == HandshakeProgram+testProgram
	}, eventually, tick)
}

func TestSendScript_ReusesOpenChannel(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	t.Cleanup(m.Disconnect)
	d := NewDispatcher(m)

	path := writeScript(t, testProgram)
	require.True(t, d.SendScript(path).OK())
	require.True(t, d.SendScript(path).OK())

	assert.Equal(t, 1, primary.acceptedCount())
	assert.Eventually(t, func() bool {
		return primary.payload() == HandshakeProgram+testProgram+testProgram
	}, eventually, tick)
}

func TestSendImmediate_ResultEndpointIsACopy(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	t.Cleanup(m.Disconnect)
	d := NewDispatcher(m)

	res := d.SendImmediate("textmsg(\"a\")")
	require.True(t, res.OK(), res.String())
	res.Endpoint.Name = "changed"

	bound, connected := m.Endpoint()
	require.True(t, connected)
	assert.Equal(t, EndpointPrimary, bound.Name)
}

func TestSendScript_NotConnected(t *testing.T) {
	m := NewConnectionManager(testTable(closedPort(t), closedPort(t), closedPort(t)), testOptions(nil))
	d := NewDispatcher(m)

	res := d.SendScript(writeScript(t, testProgram))

	assert.Equal(t, StatusNotConnected, res.Status)
	assert.ErrorIs(t, res.AsError(), ErrNotConnected)
	assert.ErrorIs(t, res.AsError(), ErrEndpointUnreachable)
	assert.Equal(t, Disconnected, m.State())
}

func TestSendImmediate_AppendsNewline(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	t.Cleanup(m.Disconnect)
	d := NewDispatcher(m)

	require.True(t, d.SendImmediate("textmsg(\"one\")").OK())
	require.True(t, d.SendImmediate("textmsg(\"two\")\n").OK())

	assert.Eventually(t, func() bool {
		return primary.payload() == HandshakeProgram+"textmsg(\"one\")\ntextmsg(\"two\")\n"
	}, eventually, tick)
}

func TestSendImmediate_NotConnected(t *testing.T) {
	m := NewConnectionManager(testTable(closedPort(t), closedPort(t), closedPort(t)), testOptions(nil))
	d := NewDispatcher(m)

	res := d.SendImmediate("stopj(2)")
	assert.False(t, res.OK())
	assert.Equal(t, StatusNotConnected, res.Status)
}

func TestSendImmediate_TransportErrorDisconnects(t *testing.T) {
	table := testTable(1, 2, 2)
	server := make(chan net.Conn, 1)
	dial := func(network, address string, timeout time.Duration) (net.Conn, error) {
		if address != table.Primary.Address() {
			return nil, errors.New("connection refused")
		}
		client, srv := net.Pipe()
		server <- srv
		return client, nil
	}

	m := NewConnectionManager(table, testOptions(dial))
	d := NewDispatcher(m)

	srv := <-connectWithPipe(t, m, server)
	require.NoError(t, srv.Close())

	res := d.SendImmediate("movej([0, 0, 0, 0, 0, 0])")

	assert.Equal(t, StatusSendFailed, res.Status)
	assert.ErrorIs(t, res.AsError(), ErrSendFailed)
	assert.ErrorIs(t, res.AsError(), io.ErrClosedPipe)
	assert.Equal(t, Disconnected, m.State())
	_, found := m.Endpoint()
	assert.False(t, found)
}

func TestSendScript_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	m := NewConnectionManager(testTable(closedPort(t), closedPort(t), closedPort(t)), testOptions(nil))
	res := NewDispatcher(m).SendScript("")
	require.Equal(t, StatusFileNotFound, res.Status)
	assert.True(t, strings.Contains(res.AsError().Error(), DefaultScriptPath))
}
