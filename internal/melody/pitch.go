package melody

import "strconv"

// Pitch is a tone frequency in Hz. The zero value is Rest.
type Pitch uint16

// Rest marks a silent step. It is a valid pitch, not a 0 Hz tone.
const Rest Pitch = 0

// Equal tempered frequencies rounded to the nearest Hz, A4 = 440.
const (
	B0 Pitch = 31

	C1  Pitch = 33
	Cs1 Pitch = 35
	D1  Pitch = 37
	Ds1 Pitch = 39
	E1  Pitch = 41
	F1  Pitch = 44
	Fs1 Pitch = 46
	G1  Pitch = 49
	Gs1 Pitch = 52
	A1  Pitch = 55
	As1 Pitch = 58
	B1  Pitch = 62

	C2  Pitch = 65
	Cs2 Pitch = 69
	D2  Pitch = 73
	Ds2 Pitch = 78
	E2  Pitch = 82
	F2  Pitch = 87
	Fs2 Pitch = 93
	G2  Pitch = 98
	Gs2 Pitch = 104
	A2  Pitch = 110
	As2 Pitch = 117
	B2  Pitch = 123

	C3  Pitch = 131
	Cs3 Pitch = 139
	D3  Pitch = 147
	Ds3 Pitch = 156
	E3  Pitch = 165
	F3  Pitch = 175
	Fs3 Pitch = 185
	G3  Pitch = 196
	Gs3 Pitch = 208
	A3  Pitch = 220
	As3 Pitch = 233
	B3  Pitch = 247

	C4  Pitch = 262
	Cs4 Pitch = 277
	D4  Pitch = 294
	Ds4 Pitch = 311
	E4  Pitch = 330
	F4  Pitch = 349
	Fs4 Pitch = 370
	G4  Pitch = 392
	Gs4 Pitch = 415
	A4  Pitch = 440
	As4 Pitch = 466
	B4  Pitch = 494

	C5  Pitch = 523
	Cs5 Pitch = 554
	D5  Pitch = 587
	Ds5 Pitch = 622
	E5  Pitch = 659
	F5  Pitch = 698
	Fs5 Pitch = 740
	G5  Pitch = 784
	Gs5 Pitch = 831
	A5  Pitch = 880
	As5 Pitch = 932
	B5  Pitch = 988

	C6  Pitch = 1047
	Cs6 Pitch = 1109
	D6  Pitch = 1175
	Ds6 Pitch = 1245
	E6  Pitch = 1319
	F6  Pitch = 1397
	Fs6 Pitch = 1480
	G6  Pitch = 1568
	Gs6 Pitch = 1661
	A6  Pitch = 1760
	As6 Pitch = 1865
	B6  Pitch = 1976

	C7  Pitch = 2093
	Cs7 Pitch = 2217
	D7  Pitch = 2349
	Ds7 Pitch = 2489
	E7  Pitch = 2637
	F7  Pitch = 2794
	Fs7 Pitch = 2960
	G7  Pitch = 3136
	Gs7 Pitch = 3322
	A7  Pitch = 3520
	As7 Pitch = 3729
	B7  Pitch = 3951

	C8  Pitch = 4186
	Cs8 Pitch = 4435
	D8  Pitch = 4699
	Ds8 Pitch = 4978
)

var names = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// table is ordered by frequency, starting at B0
var table = [...]Pitch{
	B0,
	C1, Cs1, D1, Ds1, E1, F1, Fs1, G1, Gs1, A1, As1, B1,
	C2, Cs2, D2, Ds2, E2, F2, Fs2, G2, Gs2, A2, As2, B2,
	C3, Cs3, D3, Ds3, E3, F3, Fs3, G3, Gs3, A3, As3, B3,
	C4, Cs4, D4, Ds4, E4, F4, Fs4, G4, Gs4, A4, As4, B4,
	C5, Cs5, D5, Ds5, E5, F5, Fs5, G5, Gs5, A5, As5, B5,
	C6, Cs6, D6, Ds6, E6, F6, Fs6, G6, Gs6, A6, As6, B6,
	C7, Cs7, D7, Ds7, E7, F7, Fs7, G7, Gs7, A7, As7, B7,
	C8, Cs8, D8, Ds8,
}

// String returns the note name for pitches in the table, e.g. "A#4".
func (p Pitch) String() string {
	if p == Rest {
		return "REST"
	}
	for i, q := range table {
		if p == q {
			// table[0] is B0, the 12th semitone of octave 0
			n := i + 11
			return names[n%12] + strconv.Itoa(n/12)
		}
	}
	return strconv.Itoa(int(p)) + "Hz"
}
