package astiaivoice

// HostStatus represents the coarse lifecycle state of the host as observed
// externally. The host state machine is authoritative, statuses are snapshots.
type HostStatus int

// Host statuses
const (
	HostStatusNotRunning   HostStatus = 0
	HostStatusNotConnected HostStatus = 1
	HostStatusIdle         HostStatus = 2
	HostStatusBusy         HostStatus = 3
)

func (s HostStatus) String() string {
	switch s {
	case HostStatusNotRunning:
		return "not running"
	case HostStatusNotConnected:
		return "not connected"
	case HostStatusIdle:
		return "idle"
	case HostStatusBusy:
		return "busy"
	}
	return "unknown"
}

// TextEditMode represents the edit mode of the host, which governs whether
// text operations or list operations are valid.
type TextEditMode int

// Text edit modes
const (
	TextEditModeText TextEditMode = 0
	TextEditModeList TextEditMode = 1
)

func (m TextEditMode) String() string {
	switch m {
	case TextEditModeText:
		return "text"
	case TextEditModeList:
		return "list"
	}
	return "unknown"
}
