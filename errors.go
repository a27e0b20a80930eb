package astiaivoice

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

// ErrorKind represents the category of a failed automation call.
type ErrorKind int

// Error kinds
const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindActivation
	ErrorKindHostLifecycle
	ErrorKindConnection
	ErrorKindNotRunning
	ErrorKindNotConnected
	ErrorKindBusy
	ErrorKindInvalidState
	ErrorKindInvalidArgument
	ErrorKindHostRejected
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindActivation:
		return "activation"
	case ErrorKindHostLifecycle:
		return "host lifecycle"
	case ErrorKindConnection:
		return "connection"
	case ErrorKindNotRunning:
		return "host not running"
	case ErrorKindNotConnected:
		return "host not connected"
	case ErrorKindBusy:
		return "host busy"
	case ErrorKindInvalidState:
		return "invalid state"
	case ErrorKindInvalidArgument:
		return "invalid argument"
	case ErrorKindHostRejected:
		return "rejected by host"
	}
	return "unknown"
}

// HRESULT codes surfaced by the host. The 0x80131xxx range carries the host's
// managed exceptions across the automation boundary.
const (
	codeAccessDenied       uint32 = 0x80070005
	codeArgumentOutOfRange uint32 = 0x80131502
	codeClassNotRegistered uint32 = 0x80040154
	codeFileNotFound       uint32 = 0x80070002
	codeHostException      uint32 = 0x80131500
	codeIO                 uint32 = 0x80131620
	codeInvalidArg         uint32 = 0x80070057
	codeInvalidOperation   uint32 = 0x80131509
	codeServerExecFailed   uint32 = 0x80080005
)

// Error represents a failed automation call.
type Error struct {
	Code uint32
	Kind ErrorKind
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("astiaivoice: %s failed: %s (code %#x): %s", e.Op, e.Kind, e.Code, e.err)
	}
	return fmt.Sprintf("astiaivoice: %s failed: %s: %s", e.Op, e.Kind, e.err)
}

// Cause implements the errors.Causer interface
func (e *Error) Cause() error { return e.err }

// Unwrap implements the errors.Wrapper interface
func (e *Error) Unwrap() error { return e.err }

// Kind returns the kind of an automation error, or ErrorKindUnknown for any
// other error.
func Kind(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrorKindUnknown
}

// hresultCode digs the host failure code out of an ole error. For dispatch
// exceptions the meaningful code is the exception scode, not the outer
// DISP_E_EXCEPTION result.
func hresultCode(err error) uint32 {
	oe, ok := errors.Cause(err).(*ole.OleError)
	if !ok {
		return 0
	}
	if se := oe.SubError(); se != nil {
		switch ei := se.(type) {
		case ole.EXCEPINFO:
			if c := uint32(ei.SCODE()); c > 0 {
				return c
			}
		case *ole.EXCEPINFO:
			if c := uint32(ei.SCODE()); c > 0 {
				return c
			}
		}
	}
	return uint32(oe.Code())
}

func kindFromCode(code uint32) ErrorKind {
	switch code {
	case codeClassNotRegistered, codeServerExecFailed:
		return ErrorKindActivation
	case codeInvalidArg, codeArgumentOutOfRange:
		return ErrorKindInvalidArgument
	case codeInvalidOperation:
		return ErrorKindInvalidState
	case codeHostException, codeIO, codeFileNotFound, codeAccessDenied:
		return ErrorKindHostRejected
	}
	return ErrorKindUnknown
}

func newRawError(op string, cause error) *Error {
	code := hresultCode(cause)
	return &Error{
		Code: code,
		Kind: kindFromCode(code),
		Op:   op,
		err:  cause,
	}
}

func newKindError(op string, k ErrorKind, cause error) *Error {
	return &Error{
		Code: hresultCode(cause),
		Kind: k,
		Op:   op,
		err:  cause,
	}
}
