package audio

import (
	"io"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fieldtd/engine"
)

// DefaultSampleRate is used for cue renders and live playback
const DefaultSampleRate = beep.SampleRate(44100)

type placedCue struct {
	offset int // samples from the start of the timeline
	cue    engine.Cue
}

// Recorder collects snapshot cues onto a timeline of tickRate frames per second
type Recorder struct {
	rate     beep.SampleRate
	frameLen int
	frames   int
	master   float64
	cues     []placedCue
}

// NewRecorder creates a recorder; tickRate below 1 is treated as 1
func NewRecorder(rate beep.SampleRate, tickRate int) *Recorder {
	tickRate = max(tickRate, 1)
	return &Recorder{
		rate:     rate,
		frameLen: rate.N(time.Second / time.Duration(tickRate)),
		master:   1.0,
	}
}

// SetVolume sets the master volume in [0,1]
func (r *Recorder) SetVolume(v float64) {
	r.master = max(0, min(v, 1))
}

// Record places the cues of snap on the timeline, extending it to the snapshot frame
func (r *Recorder) Record(snap engine.Snapshot) {
	r.frames = max(r.frames, snap.Frame)
	for _, c := range snap.Cues {
		if _, ok := voices[c.Type]; !ok {
			continue
		}
		start := max(c.Frame-1, 0) * r.frameLen
		r.cues = append(r.cues, placedCue{offset: start, cue: c})
	}
}

// Frames returns the number of frames covered by the timeline
func (r *Recorder) Frames() int { return r.frames }

// Cues returns the number of recorded cues
func (r *Recorder) Cues() int { return len(r.cues) }

// Samples returns the timeline length in samples
func (r *Recorder) Samples() int { return r.frames * r.frameLen }

// Streamer mixes every recorded cue over silence, cut to the timeline length
func (r *Recorder) Streamer() beep.Streamer {
	total := r.Samples()
	streams := make([]beep.Streamer, 0, len(r.cues)+1)
	streams = append(streams, beep.Silence(total))
	for _, pc := range r.cues {
		s := CueSound(pc.cue, r.rate, r.master)
		streams = append(streams, beep.Seq(beep.Silence(pc.offset), s))
	}
	return beep.Take(total, beep.Mix(streams...))
}

// Format returns the stereo 16-bit format the recorder encodes with
func (r *Recorder) Format() beep.Format {
	return beep.Format{SampleRate: r.rate, NumChannels: 2, Precision: 2}
}

// Encode writes the timeline as WAV
func (r *Recorder) Encode(w io.WriteSeeker) error {
	if err := wav.Encode(w, r.Streamer(), r.Format()); err != nil {
		return errors.Wrap(err, "encode cue timeline")
	}
	return nil
}

// WriteFile encodes the timeline into a WAV file at path
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
