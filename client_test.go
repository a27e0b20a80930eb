package astiaivoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)

	// Initial status
	s, err := c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusNotRunning, s)

	// Start host
	assert.NoError(t, c.StartHost())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusNotConnected, s)

	// Connect
	assert.NoError(t, c.Connect())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusIdle, s)

	// Play
	assert.NoError(t, c.Play())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusBusy, s)

	// Stop
	assert.NoError(t, c.Stop())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusIdle, s)

	// Disconnect
	assert.NoError(t, c.Disconnect())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusNotConnected, s)

	// Terminate host
	assert.NoError(t, c.TerminateHost())
	s, err = c.Status()
	assert.NoError(t, err)
	assert.Equal(t, HostStatusNotRunning, s)
}

func TestLifecycleErrors(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)

	// Connecting to a stopped host fails
	err := c.Connect()
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindConnection, Kind(err))
	}

	// Starting a started host fails
	assert.NoError(t, c.StartHost())
	err = c.StartHost()
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindHostLifecycle, Kind(err))
	}

	// Disconnecting without a connection fails
	err = c.Disconnect()
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindConnection, Kind(err))
	}
}

func TestTerminatedHostRejectsOperations(t *testing.T) {
	c, _ := newConnectedClient(t)
	assert.NoError(t, c.TerminateHost())

	// Every operation but StartHost now surfaces the stopped host
	err := c.SetText("test")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindNotRunning, Kind(err))
	}
	err = c.Play()
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindNotRunning, Kind(err))
	}
	err = c.AddListItem("Akari", "test")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindNotRunning, Kind(err))
	}

	// StartHost still works
	assert.NoError(t, c.StartHost())
}

func TestNotConnectedHostRejectsOperations(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)
	assert.NoError(t, c.StartHost())

	err := c.SetText("test")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindNotConnected, Kind(err))
	}
}

func TestBusyHostRejectsOperations(t *testing.T) {
	c, _ := newConnectedClient(t)
	assert.NoError(t, c.Play())

	err := c.SetText("test")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindBusy, Kind(err))
	}
}

func TestInitialize(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)

	// Not initialized yet
	b, err := c.IsInitialized()
	assert.NoError(t, err)
	assert.False(t, b)

	// Unknown host name
	err = c.Initialize("unknown")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindInvalidArgument, Kind(err))
	}

	// Valid host name
	assert.NoError(t, c.Initialize("A.I.VOICE Editor"))
	b, err = c.IsInitialized()
	assert.NoError(t, err)
	assert.True(t, b)
}

func TestInitializeHostPicksFirstAvailableName(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)
	assert.NoError(t, c.initializeHost())
	assert.True(t, f.initialized)
}

func TestAvailableHostNames(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)
	names, err := c.AvailableHostNames()
	assert.NoError(t, err)
	assert.Equal(t, []string{"A.I.VOICE Editor"}, names)
}

func TestVersion(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)
	v, err := c.Version()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.3", v)
}

func TestSaveAudioToFile(t *testing.T) {
	c, f := newConnectedClient(t)

	// Valid path
	assert.NoError(t, c.SaveAudioToFile("out.wav"))
	assert.Equal(t, "out.wav", f.savedTo)

	// Rejected path
	err := c.SaveAudioToFile("")
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindHostRejected, Kind(err))
	}
}

func TestPlayTime(t *testing.T) {
	c, f := newConnectedClient(t)
	f.playTime = 1234
	n, err := c.PlayTime()
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), n)
}

func TestStatusUnknown(t *testing.T) {
	f := newFakeHost()
	f.status = 9
	c := newTestClient(f)
	_, err := c.Status()
	if assert.Error(t, err) {
		assert.Equal(t, ErrorKindUnknown, Kind(err))
	}
}

func TestClose(t *testing.T) {
	f := newFakeHost()
	c := newTestClient(f)
	assert.NoError(t, c.Close())
	assert.True(t, f.released)
}
