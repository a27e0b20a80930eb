package astiaivoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostStatusString(t *testing.T) {
	assert.Equal(t, "not running", HostStatusNotRunning.String())
	assert.Equal(t, "not connected", HostStatusNotConnected.String())
	assert.Equal(t, "idle", HostStatusIdle.String())
	assert.Equal(t, "busy", HostStatusBusy.String())
	assert.Equal(t, "unknown", HostStatus(9).String())
}

func TestTextEditModeString(t *testing.T) {
	assert.Equal(t, "text", TextEditModeText.String())
	assert.Equal(t, "list", TextEditModeList.String())
	assert.Equal(t, "unknown", TextEditMode(9).String())
}
