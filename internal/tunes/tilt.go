package tunes

import . "git.lost.host/meutraa/pusher/internal/melody"

// Tilt is the sad trombone slide played when the machine is tilted.
var Tilt = MustNew(
	[]Pitch{
		C4, D3, C3, G3,
		B2, As2, A2, Gs2, G2, Fs2,
		F2, E2, Ds2, D2, Cs2, C2,
		B1, Rest, Rest, Rest,
	},
	[]uint8{
		8, 4, 4, 2,
		2, 16, 16, 16, 16, 16,
		16, 16, 16, 16, 16, 16,
		1, 1, 1, 1,
	},
)
