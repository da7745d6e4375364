package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// GoldDiggers is the theme from Gold Diggers of 1933, "We're in the Money".
var GoldDiggers = MustNew(
	[]Pitch{
		// chorus
		E4, G4, E4, F4, G4,
		E4, G4, E4, F4, G4,
		Rest, E5, E5, C5,
		D5, C5, D5, C5,
		E5, C5, C5, D5, C5,
		// chorus
		E4, G4, E4, F4, G4,
		E4, G4, E4, F4, G4,
		Rest, E5, E5, C5,
		D5, C5, D5, C5,
		E5, C5, C5, D5, C5,
		// bridge
		Rest, E5, D5, C5, B4, A4,
		B4, B4, Rest, C5, A4,
		B4, B4, C5, B4,
		Rest, E5, D5, C5, B4, A4,
		B4, B4, Rest, B4, B4,
		As4, As4, A4, A4,
		Gs4, Gs4, G4, Rest,
		// chorus
		E4, G4, E4, F4, G4,
		E4, G4, E4, F4, G4,
		Rest, E5, E5, C5,
		D5, C5, D5, C5,
		E5, C5, C5, D5, C5,
		Rest,
	},
	[]uint8{
		// chorus
		4, 3, 8, 4, 2,
		4, 3, 8, 4, 2,
		4, 4, 3, 8,
		4, 4, 4, 4,
		4, 4, 4, 4, 1,
		// chorus
		4, 3, 8, 4, 2,
		4, 3, 8, 4, 2,
		4, 4, 3, 8,
		4, 4, 4, 4,
		4, 4, 4, 4, 1,
		// bridge
		4, 4, 8, 8, 8, 8,
		4, 4, 8, 4, 8,
		4, 2, 4, 1,
		4, 4, 8, 8, 8, 8,
		4, 4, 8, 4, 8,
		4, 4, 4, 4,
		4, 4, 4, 4,
		// chorus
		4, 3, 8, 4, 2,
		4, 3, 8, 4, 2,
		4, 4, 3, 8,
		4, 4, 4, 4,
		4, 4, 4, 4, 1,
		1,
	},
)
