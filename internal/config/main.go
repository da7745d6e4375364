package config

import (
	"errors"
	"fmt"
	"math"

	"git.lost.host/meutraa/pusher/internal/sequencer"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	WholeNote   = kingpin.Flag("whole-note", "Duration of a whole note").Default("1s").Short('w').Duration()
	Gap         = kingpin.Flag("gap", "Fraction of every note left silent before the next").Default("0.1").Short('g').Float64()
	Backend     = kingpin.Flag("backend", "Tone output: beep, oto, log or none").Default("beep").Short('b').Enum("beep", "oto", "log", "none")
	SampleRate  = kingpin.Flag("sample-rate", "Audio sample rate").Default("44100").Int()
	Volume      = kingpin.Flag("volume", "Square wave amplitude, 0 to 1").Default("0.2").Float64()
	Buffer      = kingpin.Flag("buffer", "Audio buffer length").Default("50ms").Duration()
	FramePeriod = kingpin.Flag("frame-period", "Sequencer tick and render frame period").Default("5ms").Short('p').Duration()
	Database    = kingpin.Flag("database", "Play history database").Default("./plays.db").String()
	Jingles     = kingpin.Flag("jingles", "YAML file mapping game events to tunes").String()
	Keys        = kingpin.Flag("keys", "Keys for coin, win, bonus, jackpot, attract and tilt").Default("cwbjat").String()

	List        = kingpin.Command("list", "List the compiled in tunes")
	Play        = kingpin.Command("play", "Play one tune and exit")
	PlayTune    = Play.Arg("tune", "Tune name").Required().String()
	Run         = kingpin.Command("run", "Run the coin pusher jingle box").Default()
	History     = kingpin.Command("history", "Show played jingles")
	HistoryTune = History.Arg("tune", "Only show plays of this tune").String()
)

var (
	ErrGap         = errors.New("gap must be between 0 and 1")
	ErrFramePeriod = errors.New("frame period must be positive")
)

func init() {
	kingpin.Version("0.1.0")
}

// Parse parses the command line and returns the selected command.
func Parse(args []string) (string, error) {
	return kingpin.CommandLine.Parse(args)
}

// GapPermille converts a gap fraction to the sequencer's integer form.
func GapPermille(gap float64) (uint16, error) {
	if math.IsNaN(gap) || gap < 0 || gap > 1 {
		return 0, fmt.Errorf("%w: %v", ErrGap, gap)
	}
	return uint16(math.Round(gap * 1000)), nil
}

// Timing checks the timing flags and returns the sequencer timing.
func Timing() (sequencer.Timing, error) {
	if *FramePeriod <= 0 {
		return sequencer.Timing{}, fmt.Errorf("%w: %v", ErrFramePeriod, *FramePeriod)
	}
	gap, err := GapPermille(*Gap)
	if nil != err {
		return sequencer.Timing{}, err
	}
	timing := sequencer.Timing{WholeNote: *WholeNote, GapPermille: gap}
	return timing, timing.Validate()
}
