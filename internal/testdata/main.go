package testdata

import (
	"encoding/json"
	"fmt"

	"git.lost.host/meutraa/pusher/internal/melody"
)

type tune struct {
	Pitches []uint16 `json:"pitches"`
	Codes   []int    `json:"codes"`
}

// GetTune builds the named fixture through melody.New, so malformed
// fixtures return its error.
func GetTune(name string) (*melody.Tune, error) {
	var tunes map[string]tune
	if err := json.Unmarshal([]byte(data), &tunes); nil != err {
		return nil, err
	}
	t, ok := tunes[name]
	if !ok {
		return nil, fmt.Errorf("no fixture %q", name)
	}

	pitches := make([]melody.Pitch, len(t.Pitches))
	for i, p := range t.Pitches {
		pitches[i] = melody.Pitch(p)
	}
	codes := make([]uint8, len(t.Codes))
	for i, c := range t.Codes {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("%w: step %v has duration code %v", melody.ErrMalformedTune, i, c)
		}
		codes[i] = uint8(c)
	}
	return melody.New(pitches, codes)
}

const data = `{
	"rest-between-notes": {
		"pitches": [440, 0, 440],
		"codes": [4, 4, 4]
	},
	"dotted": {
		"pitches": [262, 294, 330, 349, 0],
		"codes": [3, 8, 6, 16, 12]
	},
	"empty": {
		"pitches": [],
		"codes": []
	},
	"mismatched": {
		"pitches": [440, 494],
		"codes": [4]
	},
	"zero-code": {
		"pitches": [440, 494],
		"codes": [4, 0]
	},
	"negative-code": {
		"pitches": [440],
		"codes": [-4]
	}
}`
