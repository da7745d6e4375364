package sequencer

type State uint8

const (
	Idle State = iota
	PlayingNote
	Gap
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PlayingNote:
		return "playing"
	case Gap:
		return "gap"
	case Finished:
		return "finished"
	}
	return "unknown"
}
