package astiaivoice

import (
	"github.com/asticode/go-astilog"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/pkg/errors"
)

// dispatcher abstracts the late-bound automation calls to the tts control so
// that the client can be exercised against a fake host in tests.
type dispatcher interface {
	callMethod(name string, params ...interface{}) (interface{}, error)
	getProperty(name string) (interface{}, error)
	putProperty(name string, params ...interface{}) error
	release()
}

// oleDispatcher issues calls to the live tts control through ole IDispatch.
type oleDispatcher struct {
	iDispatch *ole.IDispatch
	iUnknown  *ole.IUnknown
}

func newOLEDispatcher(id string) (d *oleDispatcher, err error) {
	d = &oleDispatcher{}

	// Initialize ole
	astilog.Debug("astiaivoice: initializing ole")
	if err = ole.CoInitialize(0); err != nil {
		err = errors.Wrap(err, "astiaivoice: initializing ole failed")
		return
	}

	// Create tts control object
	astilog.Debugf("astiaivoice: creating %s ole object", id)
	if d.iUnknown, err = oleutil.CreateObject(id); err != nil {
		ole.CoUninitialize()
		err = errors.Wrapf(err, "astiaivoice: creating %s ole object failed", id)
		return
	}

	// Get IDispatch
	astilog.Debug("astiaivoice: getting ole IDispatch")
	if d.iDispatch, err = d.iUnknown.QueryInterface(ole.IID_IDispatch); err != nil {
		d.iUnknown.Release()
		ole.CoUninitialize()
		err = errors.Wrap(err, "astiaivoice: getting ole IDispatch failed")
		return
	}
	return
}

func (d *oleDispatcher) callMethod(name string, params ...interface{}) (i interface{}, err error) {
	var v *ole.VARIANT
	if v, err = oleutil.CallMethod(d.iDispatch, name, params...); err != nil {
		return
	}
	return goValue(v)
}

func (d *oleDispatcher) getProperty(name string) (i interface{}, err error) {
	var v *ole.VARIANT
	if v, err = oleutil.GetProperty(d.iDispatch, name); err != nil {
		return
	}
	return goValue(v)
}

func (d *oleDispatcher) putProperty(name string, params ...interface{}) (err error) {
	var v *ole.VARIANT
	if v, err = oleutil.PutProperty(d.iDispatch, name, params...); err != nil {
		return
	}
	if v != nil {
		if err = v.Clear(); err != nil {
			err = errors.Wrap(err, "astiaivoice: clearing variant failed")
			return
		}
	}
	return
}

func (d *oleDispatcher) release() {
	// Release IDispatch
	astilog.Debug("astiaivoice: releasing IDispatch")
	d.iDispatch.Release()

	// Release IUnknown
	astilog.Debug("astiaivoice: releasing IUnknown")
	d.iUnknown.Release()

	// Uninitialize ole
	astilog.Debug("astiaivoice: uninitializing ole")
	ole.CoUninitialize()
}

// goValue copies a variant result into Go-owned memory and clears the variant
// so that no allocation crossing the process boundary outlives the call.
func goValue(v *ole.VARIANT) (i interface{}, err error) {
	if v == nil {
		return
	}

	// Clear variant
	// Clearing a VT_ARRAY variant destroys the underlying safearray as well,
	// which is why the safearray conversion below must not release it too.
	defer func() {
		if errC := v.Clear(); errC != nil && err == nil {
			err = errors.Wrap(errC, "astiaivoice: clearing variant failed")
		}
	}()

	switch {
	case v.VT&ole.VT_ARRAY > 0:
		sa := v.ToArray()
		if sa == nil {
			return
		}
		if v.VT&^ole.VT_ARRAY == ole.VT_BSTR {
			i = sa.ToStringArray()
			return
		}
		i = sa.ToValueArray()
	case v.VT == ole.VT_BSTR:
		i = v.ToString()
	case v.VT == ole.VT_EMPTY || v.VT == ole.VT_NULL:
	default:
		i = v.Value()
	}
	return
}

func stringValue(i interface{}) (s string, err error) {
	v, ok := i.(string)
	if !ok {
		err = errors.Errorf("astiaivoice: expected string value, got %T", i)
		return
	}
	s = v
	return
}

func boolValue(i interface{}) (b bool, err error) {
	v, ok := i.(bool)
	if !ok {
		err = errors.Errorf("astiaivoice: expected bool value, got %T", i)
		return
	}
	b = v
	return
}

func intValue(i interface{}) (n int64, err error) {
	switch v := i.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	default:
		err = errors.Errorf("astiaivoice: expected integer value, got %T", i)
	}
	return
}

func stringsValue(i interface{}) (ss []string, err error) {
	switch v := i.(type) {
	case nil:
	case []string:
		ss = v
	case []interface{}:
		for _, e := range v {
			var s string
			if s, err = stringValue(e); err != nil {
				return
			}
			ss = append(ss, s)
		}
	default:
		err = errors.Errorf("astiaivoice: expected string array value, got %T", i)
	}
	return
}

func intsValue(i interface{}) (ns []int, err error) {
	switch v := i.(type) {
	case nil:
	case []int:
		ns = v
	case []int32:
		for _, e := range v {
			ns = append(ns, int(e))
		}
	case []interface{}:
		for _, e := range v {
			var n int64
			if n, err = intValue(e); err != nil {
				return
			}
			ns = append(ns, int(n))
		}
	default:
		err = errors.Errorf("astiaivoice: expected integer array value, got %T", i)
	}
	return
}
