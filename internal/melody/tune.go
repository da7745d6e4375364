package melody

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedTune    = errors.New("malformed tune")
	ErrInvalidStepIndex = errors.New("invalid step index")
)

// Tune is an immutable melody: two index aligned tables of pitches and
// duration codes. A step lasts wholeNote / code, so 4 is a quarter note and
// 3 a dotted half.
type Tune struct {
	pitches []Pitch
	codes   []uint8
}

// New validates and copies the tables into a Tune.
func New(pitches []Pitch, codes []uint8) (*Tune, error) {
	if len(pitches) != len(codes) {
		return nil, fmt.Errorf("%w: %v pitches but %v duration codes", ErrMalformedTune, len(pitches), len(codes))
	}
	for i, c := range codes {
		if c == 0 {
			return nil, fmt.Errorf("%w: step %v has duration code 0", ErrMalformedTune, i)
		}
	}

	t := &Tune{
		pitches: make([]Pitch, len(pitches)),
		codes:   make([]uint8, len(codes)),
	}
	copy(t.pitches, pitches)
	copy(t.codes, codes)
	return t, nil
}

// MustNew is New for compiled in tables, it panics on malformed input.
func MustNew(pitches []Pitch, codes []uint8) *Tune {
	t, err := New(pitches, codes)
	if nil != err {
		panic(err)
	}
	return t
}

func (t *Tune) Len() int {
	return len(t.pitches)
}

func (t *Tune) PitchAt(i int) Pitch {
	t.check(i)
	return t.pitches[i]
}

func (t *Tune) DurationCodeAt(i int) uint8 {
	t.check(i)
	return t.codes[i]
}

func (t *Tune) check(i int) {
	if i < 0 || i >= len(t.pitches) {
		panic(fmt.Errorf("%w: %v not in [0, %v)", ErrInvalidStepIndex, i, len(t.pitches)))
	}
}

// Duration is the sum of every step's wholeNote / code, each division
// truncated toward zero.
func (t *Tune) Duration(wholeNote time.Duration) time.Duration {
	var total time.Duration
	for _, c := range t.codes {
		total += wholeNote / time.Duration(c)
	}
	return total
}

// Sum identifies the content of the tables, independent of any name the
// tune is registered under.
func (t *Tune) Sum() string {
	h := sha256.New()
	var buf [3]byte
	for i, p := range t.pitches {
		binary.BigEndian.PutUint16(buf[:2], uint16(p))
		buf[2] = t.codes[i]
		h.Write(buf[:])
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
