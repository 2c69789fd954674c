package urscript

import (
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_PrimaryReachable(t *testing.T) {
	dashboard := startEndpoint(t, "Connected: Universal Robots Dashboard Server\n")
	primary := startEndpoint(t, "")
	fallbackPort := closedPort(t)

	dialer := &recordingDialer{}
	table := testTable(dashboard.port(), primary.port(), fallbackPort)
	m := NewConnectionManager(table, testOptions(dialer.Dial))
	t.Cleanup(m.Disconnect)

	res := m.Connect()
	require.True(t, res.OK(), res.String())
	require.NotNil(t, res.Endpoint)
	assert.Equal(t, EndpointPrimary, res.Endpoint.Name)
	assert.Equal(t, Connected, m.State())

	assert.Equal(t, []string{table.Dashboard.Address(), table.Primary.Address()}, dialer.dialed())
	assert.Eventually(t, func() bool {
		return primary.payload() == HandshakeProgram
	}, eventually, tick)
	assert.Empty(t, dashboard.payload(), "dashboard probe must be read-only")
}

func TestConnect_DashboardUnreachable(t *testing.T) {
	primary := startEndpoint(t, "")

	dialer := &recordingDialer{}
	table := testTable(closedPort(t), primary.port(), closedPort(t))
	m := NewConnectionManager(table, testOptions(dialer.Dial))
	t.Cleanup(m.Disconnect)

	res := m.Connect()
	require.True(t, res.OK(), res.String())
	assert.True(t, m.Connected())

	dialed := dialer.dialed()
	assert.Equal(t, []string{table.Dashboard.Address(), table.Primary.Address()}, dialed)
	assert.NotContains(t, dialed, table.Fallback.Address())
}

func TestConnect_DashboardWithoutGreeting(t *testing.T) {
	dashboard := startEndpoint(t, "")
	primary := startEndpoint(t, "")

	opts := testOptions(nil)
	opts.ProbeTimeout = 100 * time.Millisecond
	m := NewConnectionManager(testTable(dashboard.port(), primary.port(), primary.port()), opts)
	t.Cleanup(m.Disconnect)

	res := m.Connect()
	require.True(t, res.OK(), res.String())
	assert.Equal(t, 1, dashboard.acceptedCount())
}

func TestConnect_FallsBackWhenPrimaryDown(t *testing.T) {
	fallback := startEndpoint(t, "")

	dialer := &recordingDialer{}
	table := testTable(closedPort(t), closedPort(t), fallback.port())
	m := NewConnectionManager(table, testOptions(dialer.Dial))
	t.Cleanup(m.Disconnect)

	res := m.Connect()
	require.True(t, res.OK(), res.String())
	assert.Equal(t, EndpointFallback, res.Endpoint.Name)

	ep, found := m.Endpoint()
	require.True(t, found)
	assert.Equal(t, fallback.port(), ep.Port)

	assert.Equal(t, []string{
		table.Dashboard.Address(),
		table.Primary.Address(),
		table.Fallback.Address(),
	}, dialer.dialed())
	assert.Eventually(t, func() bool {
		return fallback.payload() == HandshakeProgram
	}, eventually, tick)
}

func TestConnect_AllUnreachable(t *testing.T) {
	dialer := &recordingDialer{}
	table := testTable(closedPort(t), closedPort(t), closedPort(t))
	m := NewConnectionManager(table, testOptions(dialer.Dial))

	res := m.Connect()
	assert.False(t, res.OK())
	assert.Equal(t, StatusEndpointUnreachable, res.Status)
	assert.ErrorIs(t, res.AsError(), ErrEndpointUnreachable)

	var probeErr *ProbeError
	require.True(t, errors.As(res.AsError(), &probeErr))

	assert.Equal(t, Disconnected, m.State())
	_, found := m.Endpoint()
	assert.False(t, found)
	assert.Len(t, dialer.dialed(), 3)
}

func TestConnect_FallbackSameAsPrimaryIsNotProbedTwice(t *testing.T) {
	dialer := &recordingDialer{}
	port := closedPort(t)
	m := NewConnectionManager(testTable(closedPort(t), port, port), testOptions(dialer.Dial))

	res := m.Connect()
	assert.Equal(t, StatusEndpointUnreachable, res.Status)
	assert.Len(t, dialer.dialed(), 2)
}

func TestConnect_HandshakeFailed(t *testing.T) {
	table := testTable(1, 2, 2)
	dial := func(network, address string, timeout time.Duration) (net.Conn, error) {
		if address != table.Primary.Address() {
			return nil, errors.New("connection refused")
		}
		client, server := net.Pipe()
		_ = server.Close()
		return client, nil
	}

	m := NewConnectionManager(table, testOptions(dial))
	res := m.Connect()

	assert.Equal(t, StatusHandshakeFailed, res.Status)
	assert.ErrorIs(t, res.AsError(), ErrHandshakeFailed)
	assert.ErrorIs(t, res.AsError(), io.ErrClosedPipe)
	assert.Equal(t, Disconnected, m.State())
}

func TestConnect_WhenAlreadyConnectedDoesNotReprobe(t *testing.T) {
	primary := startEndpoint(t, "")
	dialer := &recordingDialer{}
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(dialer.Dial))
	t.Cleanup(m.Disconnect)

	require.True(t, m.Connect().OK())
	dialsAfterFirst := len(dialer.dialed())

	res := m.Connect()
	require.True(t, res.OK())
	assert.Len(t, dialer.dialed(), dialsAfterFirst)
	assert.Equal(t, 1, primary.acceptedCount())
}

func TestConnect_ResultEndpointIsACopy(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	t.Cleanup(m.Disconnect)

	res := m.Connect()
	require.True(t, res.OK(), res.String())
	res.Endpoint.Port = 1

	again := m.Connect()
	require.True(t, again.OK())
	assert.Equal(t, primary.port(), again.Endpoint.Port)

	bound, connected := m.Endpoint()
	require.True(t, connected)
	assert.Equal(t, primary.port(), bound.Port)
}

func TestDisconnect_SendsStopAndCloses(t *testing.T) {
	primary := startEndpoint(t, "")
	m := NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))

	require.True(t, m.Connect().OK())
	m.Disconnect()

	assert.Equal(t, Disconnected, m.State())
	_, found := m.Endpoint()
	assert.False(t, found)
	assert.Eventually(t, func() bool {
		return strings.HasSuffix(primary.payload(), StopCommand)
	}, eventually, tick)
}

func TestDisconnect_Idempotent(t *testing.T) {
	m := NewConnectionManager(NewEndpointTable(testHost, 0, 0), testOptions(nil))

	assert.NotPanics(t, func() {
		m.Disconnect()
		m.Disconnect()
	})
	assert.Equal(t, Disconnected, m.State())

	primary := startEndpoint(t, "")
	m = NewConnectionManager(testTable(closedPort(t), primary.port(), primary.port()), testOptions(nil))
	require.True(t, m.Connect().OK())

	assert.NotPanics(t, func() {
		m.Disconnect()
		m.Disconnect()
	})
	assert.Equal(t, Disconnected, m.State())
}

func TestDisconnect_SwallowsWriteErrors(t *testing.T) {
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
	srv := <-connectWithPipe(t, m, server)
	_ = srv.Close()

	assert.NotPanics(t, m.Disconnect)
	assert.Equal(t, Disconnected, m.State())
}

// connectWithPipe подключает менеджер через net.Pipe, вычитывая тестовую программу
// на серверной стороне, и возвращает серверный конец.
func connectWithPipe(t *testing.T, m *ConnectionManager, server <-chan net.Conn) <-chan net.Conn {
	t.Helper()
	out := make(chan net.Conn, 1)
	go func() {
		srv := <-server
		buf := make([]byte, len(HandshakeProgram))
		_, _ = io.ReadFull(srv, buf)
		out <- srv
	}()
	require.True(t, m.Connect().OK())
	return out
}

func TestNewEndpointTable(t *testing.T) {
	table := NewEndpointTable("10.0.0.5", 0, 0)
	assert.Equal(t, DashboardPort, table.Dashboard.Port)
	assert.Equal(t, PrimaryPort, table.Primary.Port)
	assert.False(t, table.HasDistinctFallback())
	assert.Equal(t, []Endpoint{table.Primary}, table.ControlCandidates())
	assert.Equal(t, "10.0.0.5:30002", table.Primary.Address())

	table = NewEndpointTable("10.0.0.5", 0, 30003)
	assert.True(t, table.HasDistinctFallback())
	assert.Equal(t, []Endpoint{table.Primary, table.Fallback}, table.ControlCandidates())
}

func TestNewEndpointTable_CustomPrimaryWithoutFallback(t *testing.T) {
	table := NewEndpointTable("10.0.0.5", 30003, 0)
	assert.Equal(t, 30003, table.Primary.Port)
	assert.Equal(t, 30003, table.Fallback.Port)
	assert.False(t, table.HasDistinctFallback())
	assert.Len(t, table.ControlCandidates(), 1)
}
