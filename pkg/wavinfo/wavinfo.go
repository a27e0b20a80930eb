package wavinfo

import (
	"os"
	"time"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// Info represents the properties of a wav file rendered by the host.
type Info struct {
	BitDepth   int
	Duration   time.Duration
	NumChans   int
	SampleRate int
}

// Probe reads the header of the wav file at the provided path.
func Probe(path string) (i Info, err error) {
	// Open file
	var f *os.File
	if f, err = os.Open(path); err != nil {
		err = errors.Wrapf(err, "wavinfo: opening %s failed", path)
		return
	}
	defer f.Close()

	// Read info
	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err = d.Err(); err != nil {
		err = errors.Wrapf(err, "wavinfo: reading %s info failed", path)
		return
	}
	if !d.IsValidFile() {
		err = errors.Errorf("wavinfo: %s is not a valid wav file", path)
		return
	}

	// Compute duration
	var du time.Duration
	if du, err = d.Duration(); err != nil {
		err = errors.Wrapf(err, "wavinfo: computing %s duration failed", path)
		return
	}

	i = Info{
		BitDepth:   int(d.BitDepth),
		Duration:   du,
		NumChans:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
	}
	return
}
