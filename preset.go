package astiaivoice

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MasterControl represents the host master control values. The json schema is
// owned by the host, field names must not be changed.
type MasterControl struct {
	Volume        float64 `json:"Volume"`
	Speed         float64 `json:"Speed"`
	Pitch         float64 `json:"Pitch"`
	PitchRange    float64 `json:"PitchRange"`
	MiddlePause   int     `json:"MiddlePause"`
	LongPause     int     `json:"LongPause"`
	SentencePause int     `json:"SentencePause"`
}

// clamped bounds all values to the ranges the host accepts.
func (m MasterControl) clamped() MasterControl {
	m.Volume = clampFloat(m.Volume, 0, 5)
	m.Speed = clampFloat(m.Speed, 0, 4)
	m.Pitch = clampFloat(m.Pitch, 0, 2)
	m.PitchRange = clampFloat(m.PitchRange, 0, 2)
	m.MiddlePause = clampInt(m.MiddlePause, 0, 500)
	m.LongPause = clampInt(m.LongPause, 0, 2000)
	m.SentencePause = clampInt(m.SentencePause, 0, 10000)
	return m
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MasterControl returns the host master control values.
func (c *Client) MasterControl() (m MasterControl, err error) {
	var s string
	if s, err = c.getString("getting master control", "MasterControl"); err != nil {
		return
	}
	if err = json.Unmarshal([]byte(s), &m); err != nil {
		err = errors.Wrap(err, "astiaivoice: unmarshaling master control failed")
	}
	return
}

// SetMasterControl sets the host master control values, bounded to the ranges
// the host accepts.
func (c *Client) SetMasterControl(m MasterControl) (err error) {
	var b []byte
	if b, err = json.Marshal(m.clamped()); err != nil {
		return errors.Wrap(err, "astiaivoice: marshaling master control failed")
	}
	return c.put("setting master control", "MasterControl", string(b))
}

// VoiceNames returns the names of the voices installed in the host.
func (c *Client) VoiceNames() ([]string, error) {
	return c.getStrings("getting voice names", "VoiceNames")
}

// VoicePresetNames returns the names of the registered voice presets.
func (c *Client) VoicePresetNames() ([]string, error) {
	return c.getStrings("getting voice preset names", "VoicePresetNames")
}

// CurrentVoicePresetName returns the name of the current voice preset.
func (c *Client) CurrentVoicePresetName() (string, error) {
	return c.getString("getting current voice preset name", "CurrentVoicePresetName")
}

// SetCurrentVoicePresetName sets the current voice preset by name.
func (c *Client) SetCurrentVoicePresetName(voicePresetName string) error {
	return c.put("setting current voice preset name", "CurrentVoicePresetName", voicePresetName)
}

// VoicePreset returns the named voice preset as a json document. The schema
// is owned by the host, the payload is transported untouched.
func (c *Client) VoicePreset(voicePresetName string) (string, error) {
	return c.callString("getting voice preset", "GetVoicePreset", voicePresetName)
}

// SetVoicePreset updates an existing voice preset from a json document. The
// payload is not validated locally, a malformed document is rejected by the
// host.
func (c *Client) SetVoicePreset(voicePreset string) error {
	return c.callVoid("setting voice preset", "SetVoicePreset", voicePreset)
}

// AddVoicePreset registers a new voice preset from a json document.
func (c *Client) AddVoicePreset(voicePreset string) error {
	return c.callVoid("adding voice preset", "AddVoicePreset", voicePreset)
}

// ReloadVoicePresets reloads the voice presets from the host storage.
func (c *Client) ReloadVoicePresets() error {
	return c.callVoid("reloading voice presets", "ReloadVoicePresets")
}

// ReloadPhraseDictionary reloads the host phrase dictionary.
func (c *Client) ReloadPhraseDictionary() error {
	return c.callVoid("reloading phrase dictionary", "ReloadPhraseDictionary")
}

// ReloadWordDictionary reloads the host word dictionary.
func (c *Client) ReloadWordDictionary() error {
	return c.callVoid("reloading word dictionary", "ReloadWordDictionary")
}

// ReloadSymbolDictionary reloads the host symbol dictionary.
func (c *Client) ReloadSymbolDictionary() error {
	return c.callVoid("reloading symbol dictionary", "ReloadSymbolDictionary")
}
