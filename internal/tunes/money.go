package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// Money is the Pink Floyd riff and verse.
var Money = MustNew(
	[]Pitch{
		// intro
		B2, Rest, B3, Fs3, B2, Rest,
		Fs2, A2, B2, B2, D3, Rest,
		B2, Rest, B3, Fs3, B2, Rest,
		Fs2, A2, B2, B2, D3, Rest,
		// verse 1
		Fs5, Fs5, Rest, A4, D5, D5,
		A4, B4, Rest, Rest,
		B4, D5, D5, B4, D5, B4, Fs4, A4, A4,
		E5, B4, A4, Rest, Rest,
		// verse 2
		Fs5, Fs5, Rest, D5, D5,
		A4, B4, Rest, Rest,
		D5, B4, D5, Fs4, A4, B4,
		E5, B4, A4, Rest, Rest,
		// coda
		Fs5, Fs5, Fs5, Cs5,
		Fs4, A4, Cs5, Fs5, F5,
		E5, E4, E4, G4,
		A4, B4, E5,
		D5, A4, Rest, Rest,
	},
	[]uint8{
		// intro
		8, 8, 6, 12, 8, 8,
		4, 4, 6, 12, 8, 8,
		8, 8, 6, 12, 8, 8,
		4, 4, 6, 12, 8, 8,
		// verse 1
		8, 6, 2, 16, 12, 16,
		4, 8, 1, 4,
		16, 12, 16, 4, 4, 4, 4, 12, 16,
		3, 16, 6, 4, 1,
		// verse 2
		8, 6, 2, 12, 16,
		4, 8, 1, 4,
		4, 4, 4, 4, 4, 4,
		3, 16, 6, 4, 1,
		// coda
		4, 4, 12, 16,
		4, 4, 4, 4, 4,
		12, 16, 4, 4,
		4, 4, 3,
		8, 4, 4, 1,
	},
)
