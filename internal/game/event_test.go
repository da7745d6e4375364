package game

import (
	"errors"
	"testing"
)

func TestParseEvent(t *testing.T) {
	for _, e := range Events() {
		parsed, err := ParseEvent(e.String())
		if nil != err || parsed != e {
			t.Errorf("ParseEvent(%q) = %v, %v", e.String(), parsed, err)
		}
	}
	if _, err := ParseEvent("refund"); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("error %v, expected ErrUnknownEvent", err)
	}
	if s := Event(42).String(); s != "event(42)" {
		t.Errorf("String() = %v", s)
	}
}
