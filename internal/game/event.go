package game

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrUnknownEvent = errors.New("unknown event")

// Event is something happening on the coin pusher that deserves a jingle.
type Event uint8

const (
	Coin Event = iota
	Win
	Bonus
	Jackpot
	Attract
	Tilt
)

var eventNames = [...]string{
	Coin:    "coin",
	Win:     "win",
	Bonus:   "bonus",
	Jackpot: "jackpot",
	Attract: "attract",
	Tilt:    "tilt",
}

// Events lists every event in declaration order.
func Events() []Event {
	return []Event{Coin, Win, Bonus, Jackpot, Attract, Tilt}
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("event(%d)", uint8(e))
}

func ParseEvent(s string) (Event, error) {
	for i, name := range eventNames {
		if s == name {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); nil != err {
		return err
	}
	ev, err := ParseEvent(s)
	if nil != err {
		return fmt.Errorf("line %v: %w", value.Line, err)
	}
	*e = ev
	return nil
}

func (e Event) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}
