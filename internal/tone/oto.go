//go:build !baremetal

package tone

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"github.com/ebitengine/oto/v3"
)

// OtoDriver writes the square wave as mono 16-bit PCM to an oto player.
type OtoDriver struct {
	mu     sync.Mutex
	osc    oscillator
	amp    int16
	player *oto.Player
}

func NewOtoDriver(sampleRate int, buffer time.Duration, volume float64) (*OtoDriver, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   buffer,
	})
	if nil != err {
		return nil, fmt.Errorf("unable to create oto context: %w", err)
	}
	<-ready

	d := &OtoDriver{
		osc: oscillator{rate: uint32(sampleRate)},
		amp: int16(amplitude(volume) * math.MaxInt16),
	}
	d.player = ctx.NewPlayer(d)
	d.player.Play()
	return d, nil
}

// Read is called by oto from its own goroutine.
func (d *OtoDriver) Read(buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		v := int16(d.osc.next()) * d.amp
		binary.LittleEndian.PutUint16(buf[i:], uint16(v))
	}
	return n, nil
}

func (d *OtoDriver) Activate(hz melody.Pitch) {
	d.mu.Lock()
	d.osc.set(hz)
	d.mu.Unlock()
}

func (d *OtoDriver) Silence() {
	d.mu.Lock()
	d.osc.set(melody.Rest)
	d.mu.Unlock()
}

func (d *OtoDriver) Close() error {
	d.Silence()
	if err := d.player.Close(); nil != err {
		return fmt.Errorf("unable to close oto player: %w", err)
	}
	return nil
}
