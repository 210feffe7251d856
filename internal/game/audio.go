package game

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player owns the audio chain for one track:
//
//	file -> decoder -> loop -> volume (mute) -> ctrl (pause) -> speaker
//
// The track loops forever, so playback time jumps back to zero at the end
// of each pass and the trigger monitor re-arms off that backward jump.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	volume   *effects.Volume
	ctrl     *beep.Ctrl
	playing  bool
}

// LoadTrack opens and decodes an audio file by extension (wav, mp3 or
// flac). The player starts muted; the start action decides when to unmute.
func LoadTrack(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch filepath.Ext(path) {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	case ".flac", ".FLAC":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	volume := &effects.Volume{
		Streamer: beep.Loop(-1, streamer),
		Base:     2,
		Volume:   0,
		Silent:   true,
	}
	return &Player{
		file:     f,
		streamer: streamer,
		format:   format,
		volume:   volume,
		ctrl:     &beep.Ctrl{Streamer: volume},
	}, nil
}

// Play initializes the speaker and starts the chain. Initialization is the
// one fallible step; on failure the caller keeps animating without audio.
func (p *Player) Play() error {
	if p.playing {
		return nil
	}
	bufferSize := p.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
		return err
	}
	speaker.Play(p.ctrl)
	p.playing = true
	return nil
}

// CurrentTime reports playback position in seconds, read from the decoder
// under the speaker lock. The loop wrapper seeks the decoder back to zero
// at the end of each pass, so this value jumps backward on loop. Before
// Play it is always zero.
func (p *Player) CurrentTime() float64 {
	if !p.playing {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

func (p *Player) SetMuted(muted bool) {
	speaker.Lock()
	p.volume.Silent = muted
	speaker.Unlock()
}

// TogglePause flips playback and returns the new paused state. Position
// freezes with the stream, so triggers pause along with the audio.
func (p *Player) TogglePause() bool {
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	return paused
}

// Duration is the length of one playback pass.
func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) Close() {
	if p.playing {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	_ = p.streamer.Close()
	_ = p.file.Close()
}
