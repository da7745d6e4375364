package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// PopGoesTheWeasel is the nursery rhyme.
var PopGoesTheWeasel = MustNew(
	[]Pitch{
		G4, C5, C5, D5, D5,
		E5, G5, E5, C5, G4,
		C5, C5, D5, F5, E5, C5, G4,
		C5, C5, D5, D5, E5, G5, E5, C5,
		A5, D5, F5, E5, C5, Rest,
		G5, C6, C6, A5, C6, B5, D6, B5, G5,
		G5, C6, C6, A5, C6, B5, G5,
		F5, E5, F5, G5, A5, B5, C6,
		A5, D5, F5, E5, C5, Rest,
	},
	[]uint8{
		8, 4, 8, 4, 8,
		8, 8, 8, 4, 8,
		4, 8, 4, 8, 3, 4, 8,
		4, 8, 4, 8, 8, 8, 8, 3,
		3, 4, 8, 3, 4, 8,
		8, 4, 8, 4, 8, 8, 8, 8, 4,
		8, 4, 8, 4, 8, 3, 3,
		4, 8, 4, 8, 4, 8, 4,
		3, 4, 8, 3, 4, 1,
	},
)
