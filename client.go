package astiaivoice

import (
	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// ClassID is the class identifier the host installer registers for the tts
// control automation object.
const ClassID = "{B628D293-341C-41BE-B2E7-9E7822B2B7AC}"

// Client controls the host through its tts control automation object. It owns
// the underlying interface pointer exclusively: calls are synchronous round
// trips to the host process and are not safe for concurrent use without
// external locking.
type Client struct {
	d dispatcher
	o Options
}

// Options represents client options
type Options struct {
	// HostName is the host program name passed to Initialize. When empty, the
	// first available host name is used.
	HostName string `toml:"host_name"`
	// ProgID overrides the identifier of the automation object to activate.
	ProgID string `toml:"prog_id"`
	// SkipInitialize skips binding the automation object to a host program on
	// creation, leaving it to the caller.
	SkipInitialize bool `toml:"skip_initialize"`
}

// New creates a client and activates the host automation object.
func New(o Options) (c *Client, err error) {
	// Create dispatcher
	id := o.ProgID
	if id == "" {
		id = ClassID
	}
	var d *oleDispatcher
	if d, err = newOLEDispatcher(id); err != nil {
		err = newKindError("activating tts control", ErrorKindActivation, err)
		return
	}
	c = &Client{d: d, o: o}

	// Initialize host
	if !o.SkipInitialize {
		if err = c.initializeHost(); err != nil {
			c.d.release()
			c = nil
			return
		}
	}
	return
}

func (c *Client) initializeHost() (err error) {
	// Get host name
	name := c.o.HostName
	if name == "" {
		var names []string
		if names, err = c.AvailableHostNames(); err != nil {
			return
		}
		if len(names) == 0 {
			return newKindError("initializing host", ErrorKindActivation, errors.New("astiaivoice: no available host names"))
		}
		name = names[0]
	}

	// Initialize
	return c.Initialize(name)
}

// Close releases the automation object. No call is valid on the client
// afterwards.
func (c *Client) Close() error {
	astilog.Debug("astiaivoice: closing client")
	c.d.release()
	return nil
}

// newError translates a failed automation call into a typed error. When the
// host reports an invalid operation, one status snapshot is read to tell a
// stopped, disconnected or busy host apart from a plain invalid state.
func (c *Client) newError(op string, cause error) error {
	e := newRawError(op, cause)
	if e.Kind == ErrorKindInvalidState {
		if s, err := c.Status(); err == nil {
			switch s {
			case HostStatusNotRunning:
				e.Kind = ErrorKindNotRunning
			case HostStatusNotConnected:
				e.Kind = ErrorKindNotConnected
			case HostStatusBusy:
				e.Kind = ErrorKindBusy
			}
		}
	}
	return e
}

func (c *Client) callVoid(op, name string, params ...interface{}) (err error) {
	if _, err = c.d.callMethod(name, params...); err != nil {
		err = c.newError(op, err)
	}
	return
}

func (c *Client) callValue(op, name string, params ...interface{}) (i interface{}, err error) {
	if i, err = c.d.callMethod(name, params...); err != nil {
		err = c.newError(op, err)
	}
	return
}

func (c *Client) callString(op, name string, params ...interface{}) (s string, err error) {
	var i interface{}
	if i, err = c.callValue(op, name, params...); err != nil {
		return
	}
	if s, err = stringValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) callInt(op, name string, params ...interface{}) (n int64, err error) {
	var i interface{}
	if i, err = c.callValue(op, name, params...); err != nil {
		return
	}
	if n, err = intValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) callStrings(op, name string, params ...interface{}) (ss []string, err error) {
	var i interface{}
	if i, err = c.callValue(op, name, params...); err != nil {
		return
	}
	if ss, err = stringsValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) getValue(op, name string) (i interface{}, err error) {
	if i, err = c.d.getProperty(name); err != nil {
		err = c.newError(op, err)
	}
	return
}

func (c *Client) getString(op, name string) (s string, err error) {
	var i interface{}
	if i, err = c.getValue(op, name); err != nil {
		return
	}
	if s, err = stringValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) getInt(op, name string) (n int64, err error) {
	var i interface{}
	if i, err = c.getValue(op, name); err != nil {
		return
	}
	if n, err = intValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) getBool(op, name string) (b bool, err error) {
	var i interface{}
	if i, err = c.getValue(op, name); err != nil {
		return
	}
	if b, err = boolValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) getStrings(op, name string) (ss []string, err error) {
	var i interface{}
	if i, err = c.getValue(op, name); err != nil {
		return
	}
	if ss, err = stringsValue(i); err != nil {
		err = errors.Wrapf(err, "astiaivoice: %s failed", op)
	}
	return
}

func (c *Client) put(op, name string, params ...interface{}) (err error) {
	if err = c.d.putProperty(name, params...); err != nil {
		err = c.newError(op, err)
	}
	return
}

// Initialize binds the automation object to the named host program.
func (c *Client) Initialize(hostName string) error {
	astilog.Debugf("astiaivoice: initializing host %s", hostName)
	return c.callVoid("initializing host", "Initialize", hostName)
}

// IsInitialized returns whether the automation object is bound to a host
// program.
func (c *Client) IsInitialized() (bool, error) {
	return c.getBool("getting initialized state", "IsInitialized")
}

// AvailableHostNames returns the host program names the automation object can
// bind to.
func (c *Client) AvailableHostNames() ([]string, error) {
	return c.callStrings("getting available host names", "GetAvailableHostNames")
}

// Version returns the host version.
func (c *Client) Version() (string, error) {
	return c.getString("getting version", "Version")
}

// StartHost launches the host process.
func (c *Client) StartHost() (err error) {
	astilog.Debug("astiaivoice: starting host")
	if _, err = c.d.callMethod("StartHost"); err != nil {
		err = newKindError("starting host", ErrorKindHostLifecycle, err)
	}
	return
}

// TerminateHost stops the host process.
func (c *Client) TerminateHost() (err error) {
	astilog.Debug("astiaivoice: terminating host")
	if _, err = c.d.callMethod("TerminateHost"); err != nil {
		err = newKindError("terminating host", ErrorKindHostLifecycle, err)
	}
	return
}

// Connect establishes the automation link to a running host.
func (c *Client) Connect() (err error) {
	astilog.Debug("astiaivoice: connecting to host")
	if _, err = c.d.callMethod("Connect"); err != nil {
		err = newKindError("connecting to host", ErrorKindConnection, err)
	}
	return
}

// Disconnect releases the automation link.
func (c *Client) Disconnect() (err error) {
	astilog.Debug("astiaivoice: disconnecting from host")
	if _, err = c.d.callMethod("Disconnect"); err != nil {
		err = newKindError("disconnecting from host", ErrorKindConnection, err)
	}
	return
}

// Status returns the current host status. The value is read from the host on
// every call and never cached so that it cannot diverge from the true host
// state.
func (c *Client) Status() (s HostStatus, err error) {
	var i interface{}
	if i, err = c.d.getProperty("Status"); err != nil {
		err = newRawError("getting status", err)
		return
	}
	var n int64
	if n, err = intValue(i); err != nil {
		err = errors.Wrap(err, "astiaivoice: getting status failed")
		return
	}
	s = HostStatus(n)
	switch s {
	case HostStatusNotRunning, HostStatusNotConnected, HostStatusIdle, HostStatusBusy:
	default:
		s = 0
		err = newKindError("getting status", ErrorKindUnknown, errors.Errorf("astiaivoice: unknown host status %d", n))
	}
	return
}

// Play triggers synthesis and playback of the current text. The call returns
// before playback completes, completion is observed by polling Status until
// the host goes back to idle.
func (c *Client) Play() error {
	astilog.Debug("astiaivoice: playing")
	return c.callVoid("playing", "Play")
}

// Stop interrupts synthesis and playback.
func (c *Client) Stop() error {
	astilog.Debug("astiaivoice: stopping")
	return c.callVoid("stopping", "Stop")
}

// SaveAudioToFile requests the host to render the current text to the file at
// the provided path.
func (c *Client) SaveAudioToFile(path string) error {
	astilog.Debugf("astiaivoice: saving audio to %s", path)
	return c.callVoid("saving audio to file", "SaveAudioToFile", path)
}

// PlayTime returns the playback time reported by the host.
func (c *Client) PlayTime() (int64, error) {
	return c.callInt("getting play time", "GetPlayTime")
}
