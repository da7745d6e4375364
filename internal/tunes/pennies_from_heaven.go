package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// PenniesFromHeaven plays the chorus, bridge and finale.
var PenniesFromHeaven = MustNew(
	[]Pitch{
		// chorus
		C5, C5, C5, B4, D5, D5, B4,
		A4, A4, A4, A4, G4, Rest,
		// chorus
		C5, C5, C5, B4, D5, D5, B4,
		A4, A4, A4, A4, G4, Rest,
		// bridge
		Rest, E4, G4, As4,
		D5, D5, C5, As4,
		Rest, A4, A4, Gs4, A4,
		Rest, Fs4, A4, C5, E5, E5, D5, C5,
		Rest, B4, D5, Rest, F4, A4,
		// finale
		C5, C5, C5, B4, D5, D5, B4,
		A4, A4, A4, A4, G4, Rest,
		C5, C5, C5, B4, D5, D5, C5,
		E5, E5, E5, E5, D5,
		Rest, F4, A4, C5, E5, E5, E5, Ds5,
		D5, D5, D5, Cs5, C5, B4,
		B4, As4, A4, F4, A4, C5, A4, C5,
		D5, E5, C5, Rest,
	},
	[]uint8{
		// chorus
		4, 4, 4, 4, 4, 4, 2,
		8, 8, 8, 3, 2, 2,
		// chorus
		4, 4, 4, 4, 4, 4, 2,
		8, 8, 8, 3, 2, 2,
		// bridge
		4, 4, 4, 4,
		4, 4, 4, 4,
		4, 4, 4, 4, 1,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 8, 8, 4, 1,
		// finale
		4, 4, 4, 4, 4, 4, 2,
		8, 8, 8, 3, 2, 2,
		4, 4, 4, 4, 4, 4, 2,
		8, 8, 8, 3, 1,
		4, 4, 4, 4, 4, 4, 4, 4,
		4, 4, 8, 8, 8, 2,
		8, 8, 6, 6, 6, 6, 6, 6,
		2, 2, 1, 1,
	},
)
