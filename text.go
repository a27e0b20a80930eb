package astiaivoice

import "github.com/pkg/errors"

// Text returns the host edit buffer.
func (c *Client) Text() (string, error) {
	return c.getString("getting text", "Text")
}

// SetText replaces the host edit buffer. Valid only while the host is
// connected and idle.
func (c *Client) SetText(text string) error {
	return c.put("setting text", "Text", text)
}

// TextSelectionStart returns the start of the selection in the edit buffer.
func (c *Client) TextSelectionStart() (n int, err error) {
	var v int64
	if v, err = c.getInt("getting text selection start", "TextSelectionStart"); err != nil {
		return
	}
	n = int(v)
	return
}

// SetTextSelectionStart sets the start of the selection in the edit buffer.
func (c *Client) SetTextSelectionStart(v int) error {
	return c.put("setting text selection start", "TextSelectionStart", int32(v))
}

// TextSelectionLength returns the length of the selection in the edit buffer.
func (c *Client) TextSelectionLength() (n int, err error) {
	var v int64
	if v, err = c.getInt("getting text selection length", "TextSelectionLength"); err != nil {
		return
	}
	n = int(v)
	return
}

// SetTextSelectionLength sets the length of the selection in the edit buffer.
func (c *Client) SetTextSelectionLength(v int) error {
	return c.put("setting text selection length", "TextSelectionLength", int32(v))
}

// TextEditMode returns the edit mode of the host.
func (c *Client) TextEditMode() (m TextEditMode, err error) {
	var n int64
	if n, err = c.getInt("getting text edit mode", "TextEditMode"); err != nil {
		return
	}
	m = TextEditMode(n)
	switch m {
	case TextEditModeText, TextEditModeList:
	default:
		m = 0
		err = newKindError("getting text edit mode", ErrorKindUnknown, errors.Errorf("astiaivoice: unknown text edit mode %d", n))
	}
	return
}

// SetTextEditMode sets the edit mode of the host.
func (c *Client) SetTextEditMode(m TextEditMode) error {
	return c.put("setting text edit mode", "TextEditMode", int32(m))
}
