package alarm

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880.0
	toneDuration  = 400 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerLock sync.Mutex
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		if speakerErr != nil {
			log.Printf("Audio disabled: Failed to initialize speaker: %v", speakerErr)
		}
	})
	return speakerErr
}

// BeepPlayer decodes the sound file once into memory and plays it through
// the system speaker. An empty file name plays a generated tone.
type BeepPlayer struct {
	file   string
	volume float64
	silent bool

	mu     sync.Mutex
	buffer *beep.Buffer
}

// NewBeepPlayer parses the afplay-style volume and prepares a player.
func NewBeepPlayer(file, volume string) (*BeepPlayer, error) {
	level, silent, err := ParseVolume(volume)
	if err != nil {
		return nil, err
	}
	return &BeepPlayer{file: file, volume: level, silent: silent}, nil
}

// ParseVolume maps an afplay volume (1 is nominal, 2 twice as loud) onto
// the base-2 exponent used by effects.Volume. Zero or below is silent.
func ParseVolume(v string) (float64, bool, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid volume %q: %w", v, err)
	}
	if f <= 0 {
		return 0, true, nil
	}
	return math.Log2(f), false, nil
}

// Play plays the sound once and waits until the speaker has drained it.
func (p *BeepPlayer) Play(ctx context.Context) error {
	b, err := p.load()
	if err != nil {
		return err
	}
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("initialize speaker: %w", err)
	}

	vol := &effects.Volume{
		Streamer: b.Streamer(0, b.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   p.silent,
	}
	done := make(chan struct{})

	speakerLock.Lock()
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))
	speakerLock.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (p *BeepPlayer) load() (*beep.Buffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buffer != nil {
		return p.buffer, nil
	}

	if p.file == "" {
		buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buffer.Append(tone(sampleRate, toneFrequency, toneDuration))
		p.buffer = buffer
		return buffer, nil
	}

	f, err := os.Open(p.file)
	if err != nil {
		return nil, fmt.Errorf("open sound %s: %w", p.file, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(p.file)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode sound %s: %w", p.file, err)
	}
	defer streamer.Close()
	log.Printf("Successfully decoded audio file: %s", p.file)

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	p.buffer = buffer
	return buffer, nil
}

// tone generates a sine wave of the given frequency and length.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			v := 0.3 * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[n][0] = v
			samples[n][1] = v
			pos++
		}
		return n, true
	})
}
