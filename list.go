package astiaivoice

import (
	"strconv"

	"github.com/pkg/errors"
)

// List operations are valid only while the host edit mode is
// TextEditModeList. Indices and ranges are validated by the host against the
// current list bounds, not locally.

// ListCount returns the number of items in the host list.
func (c *Client) ListCount() (n int, err error) {
	var v int64
	if v, err = c.callInt("getting list count", "GetListCount"); err != nil {
		return
	}
	n = int(v)
	return
}

// ListSelectionIndices returns the indices of the selected list items.
func (c *Client) ListSelectionIndices() (ns []int, err error) {
	var i interface{}
	if i, err = c.callValue("getting list selection indices", "GetListSelectionIndices"); err != nil {
		return
	}
	if ns, err = intsValue(i); err != nil {
		err = errors.Wrap(err, "astiaivoice: getting list selection indices failed")
	}
	return
}

// ListSelectionCount returns the number of selected list items.
func (c *Client) ListSelectionCount() (n int, err error) {
	var v int64
	if v, err = c.callInt("getting list selection count", "GetListSelectionCount"); err != nil {
		return
	}
	n = int(v)
	return
}

// SetListSelectionIndex selects a single list item.
func (c *Client) SetListSelectionIndex(index int) error {
	return c.callVoid("setting list selection index", "SetListSelectionIndex", int32(index))
}

// SetListSelectionIndices selects the list items at the provided indices. The
// host expects the indices as an array of strings, which is how they are sent
// across the boundary.
func (c *Client) SetListSelectionIndices(indices []int) error {
	ss := make([]string, len(indices))
	for i, n := range indices {
		ss[i] = strconv.Itoa(n)
	}
	return c.callVoid("setting list selection indices", "SetListSelectionIndices", ss)
}

// SetListSelectionRange selects length list items starting at start.
func (c *Client) SetListSelectionRange(start, length int) error {
	return c.callVoid("setting list selection range", "SetListSelectionRange", int32(start), int32(length))
}

// AddListItem appends a list item with the provided voice preset name and
// sentence text.
func (c *Client) AddListItem(voicePresetName, text string) error {
	return c.callVoid("adding list item", "AddListItem", voicePresetName, text)
}

// InsertListItem inserts a list item at the current selection.
func (c *Client) InsertListItem(voicePresetName, text string) error {
	return c.callVoid("inserting list item", "InsertListItem", voicePresetName, text)
}

// RemoveListItem removes the selected list items.
func (c *Client) RemoveListItem() error {
	return c.callVoid("removing list item", "RemoveListItem")
}

// ClearListItems removes all list items.
func (c *Client) ClearListItems() error {
	return c.callVoid("clearing list items", "ClearListItems")
}

// ListVoicePreset returns the voice preset name of the selected list item.
func (c *Client) ListVoicePreset() (string, error) {
	return c.callString("getting list voice preset", "GetListVoicePreset")
}

// SetListVoicePreset sets the voice preset of the selected list items.
func (c *Client) SetListVoicePreset(voicePresetName string) error {
	return c.callVoid("setting list voice preset", "SetListVoicePreset", voicePresetName)
}

// ListSentence returns the sentence text of the selected list item.
func (c *Client) ListSentence() (string, error) {
	return c.callString("getting list sentence", "GetListSentence")
}
