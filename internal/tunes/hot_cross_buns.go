package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// HotCrossBuns is the nursery rhyme.
var HotCrossBuns = MustNew(
	[]Pitch{
		B4, A4, G4,
		B4, A4, G4,
		G4, G4, G4, G4, A4, A4, A4, A4,
		B4, A4, G4,
		Rest,
	},
	[]uint8{
		4, 4, 2,
		4, 4, 2,
		8, 8, 8, 8, 8, 8, 8, 8,
		4, 4, 2,
		1,
	},
)
